package store

import (
	"database/sql"
	"errors"

	"github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"

	"github.com/ougirez/gerencia/internal/pkg/constants"
)

const (
	// column aliases scanned into aggregate.RawCount and aggregate.RawPair
	aliasGroup   = "grupo"
	aliasGroupB  = "grupo_b"
	aliasCount   = "cantidad"
	aliasValue   = "valor"
	likeEscape   = `\`
	opList       = "list"
	opGet        = "get"
	opCount      = "count"
	opDistinct   = "distinct"
	opGroupCount = "group_count"
)

var mapping = map[error]error{
	pgx.ErrNoRows: constants.ErrDBNotFound,
	sql.ErrNoRows: constants.ErrDBNotFound,
}

func wrapErr(err error) error {
	for k, v := range mapping {
		if errors.Is(err, k) {
			return v
		}
	}
	return err
}

// builder возвращает squirrel SQL Builder обьект.
func builder() squirrel.StatementBuilderType {
	return squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)
}
