package repositories

import (
	"context"

	"github.com/karnaval/go-costume-catalog/internal/models"
	"github.com/karnaval/go-costume-catalog/internal/monitoring"
)

func (csr *costumeRepository) GetCharacteristics(ctx context.Context, costumeID int) (result models.Characteristics, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	rows, err := csr.r.extractTxRead(ctx).QueryContext(ctx, queryCharacteristicList, costumeID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	result = make(models.Characteristics)
	for rows.Next() {
		var name, value string
		if err = rows.Scan(&name, &value); err != nil {
			return nil, err
		}
		result[name] = value
	}

	if err = rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

// ReplaceCharacteristics must run inside Atomic, the delete and the inserts
// are only meaningful together.
func (csr *costumeRepository) ReplaceCharacteristics(ctx context.Context, costumeID int, chars models.Characteristics) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	db := csr.r.extractTxWrite(ctx)
	if _, err = db.ExecContext(ctx, queryCharacteristicDeleteByCostumeID, costumeID); err != nil {
		return err
	}

	cleaned := chars.Clean()
	for _, name := range cleaned.Names() {
		if _, err = db.ExecContext(ctx, queryCharacteristicInsert, costumeID, name, cleaned[name]); err != nil {
			return err
		}
	}

	return nil
}

func (csr *costumeRepository) DeleteCharacteristics(ctx context.Context, costumeID int) (err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	_, err = csr.r.extractTxWrite(ctx).ExecContext(ctx, queryCharacteristicDeleteByCostumeID, costumeID)
	return err
}

func (csr *costumeRepository) DeleteCharacteristicsByCategoryID(ctx context.Context, categoryID int) (affected int64, err error) {
	monitor := monitoring.New(ctx)
	defer func() { monitor.Finish(monitoring.WithFinishCheckError(err)) }()

	return execAffected(ctx, csr.r.extractTxWrite(ctx), queryCharacteristicDeleteByCategoryID, categoryID)
}
