package catalog

import (
	"github.com/m04kA/tours-service/internal/domain"
	"github.com/m04kA/tours-service/pkg/dbmetrics"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// tables соответствие типа каталога и таблицы
var tables = map[domain.CatalogKind]string{
	domain.KindTour:     "tours",
	domain.KindActivity: "activities",
	domain.KindTransfer: "transfers",
}

func tableFor(kind domain.CatalogKind) (string, error) {
	table, ok := tables[kind]
	if !ok {
		return "", ErrUnknownKind
	}
	return table, nil
}
