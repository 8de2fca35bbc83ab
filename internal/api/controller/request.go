package controller

type idRequest struct {
	ID int64 `param:"id" validate:"gte=0"`
}

type valueRequest struct {
	Value string `param:"value" validate:"required"`
}
