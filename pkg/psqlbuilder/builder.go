package psqlbuilder

import "github.com/Masterminds/squirrel"

// Обертки над squirrel с PostgreSQL-плейсхолдерами ($1, $2, ...)

// Select возвращает SELECT-билдер с долларовыми плейсхолдерами
func Select(columns ...string) squirrel.SelectBuilder {
	return squirrel.Select(columns...).PlaceholderFormat(squirrel.Dollar)
}

// Insert возвращает INSERT-билдер с долларовыми плейсхолдерами
func Insert(into string) squirrel.InsertBuilder {
	return squirrel.Insert(into).PlaceholderFormat(squirrel.Dollar)
}

// Update возвращает UPDATE-билдер с долларовыми плейсхолдерами
func Update(table string) squirrel.UpdateBuilder {
	return squirrel.Update(table).PlaceholderFormat(squirrel.Dollar)
}

// Delete возвращает DELETE-билдер с долларовыми плейсхолдерами
func Delete(from string) squirrel.DeleteBuilder {
	return squirrel.Delete(from).PlaceholderFormat(squirrel.Dollar)
}
