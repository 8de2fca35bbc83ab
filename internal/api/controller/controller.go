package controller

import (
	"github.com/ougirez/gerencia/internal/service/staffing"
)

// Controller serves the staffing views that are not plain domain resources.
type Controller struct {
	staffing *staffing.Service
}

func NewController(staffing *staffing.Service) *Controller {
	return &Controller{staffing: staffing}
}
