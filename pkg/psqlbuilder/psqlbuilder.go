package psqlbuilder

import "github.com/Masterminds/squirrel"

// builder построитель запросов с плейсхолдерами PostgreSQL ($1, $2, ...)
var builder = squirrel.StatementBuilder.PlaceholderFormat(squirrel.Dollar)

func Select(columns ...string) squirrel.SelectBuilder {
	return builder.Select(columns...)
}

func Insert(table string) squirrel.InsertBuilder {
	return builder.Insert(table)
}

func Update(table string) squirrel.UpdateBuilder {
	return builder.Update(table)
}

func Delete(table string) squirrel.DeleteBuilder {
	return builder.Delete(table)
}
