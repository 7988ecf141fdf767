package postgre

import (
	"context"
	"database/sql"

	"todo-backend/internal/model"
	repo "todo-backend/internal/device/repository"
)

const deviceColumns = `id, user_id, expo_push_token, platform, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDevice(row rowScanner) (model.Device, error) {
	var item model.Device
	err := row.Scan(
		&item.ID,
		&item.UserID,
		&item.ExpoPushToken,
		&item.Platform,
		&item.CreatedAt,
		&item.UpdatedAt,
	)
	return item, err
}

// UpsertDevice inserts a device row; re-registering the same token for the
// same user refreshes platform and updated_at in place.
func (r *implRepository) UpsertDevice(ctx context.Context, opt repo.UpsertDeviceOptions) (model.Device, error) {
	query := `
		INSERT INTO user_devices (user_id, expo_push_token, platform, created_at, updated_at)
		VALUES ($1, $2, $3, NOW(), NOW())
		ON CONFLICT (user_id, expo_push_token)
		DO UPDATE SET platform = EXCLUDED.platform, updated_at = NOW()
		RETURNING ` + deviceColumns

	item, err := scanDevice(r.db.QueryRowContext(ctx, query, opt.UserID, opt.ExpoPushToken, opt.Platform))
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("UpsertDevice"), err)
		return model.Device{}, repo.ErrFailedToUpsertDevice
	}
	return item, nil
}

// GetOneDevice retrieves a single Device by the provided filters.
// Returns zero-value Device (ID == "") when not found.
func (r *implRepository) GetOneDevice(ctx context.Context, opt repo.GetOneDeviceOptions) (model.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM user_devices WHERE id = $1 AND user_id = $2 LIMIT 1`

	item, err := scanDevice(r.db.QueryRowContext(ctx, query, opt.ID, opt.UserID))
	if err == sql.ErrNoRows {
		return model.Device{}, nil
	}
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetOneDevice"), err)
		return model.Device{}, repo.ErrFailedToGetDevice
	}
	return item, nil
}

// ListDevices returns all devices registered by one user, oldest first.
func (r *implRepository) ListDevices(ctx context.Context, opt repo.ListDevicesOptions) ([]model.Device, error) {
	query := `SELECT ` + deviceColumns + ` FROM user_devices WHERE user_id = $1 ORDER BY created_at ASC`

	rows, err := r.db.QueryContext(ctx, query, opt.UserID)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("ListDevices"), err)
		return nil, repo.ErrFailedToListDevices
	}
	defer rows.Close()

	var items []model.Device
	for rows.Next() {
		item, err := scanDevice(rows)
		if err != nil {
			r.l.Errorf(ctx, "%s scan: %v", r.dsn("ListDevices"), err)
			return nil, repo.ErrFailedToListDevices
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		r.l.Errorf(ctx, "%s rows: %v", r.dsn("ListDevices"), err)
		return nil, repo.ErrFailedToListDevices
	}
	return items, nil
}

// DeleteDevice removes a Device by ID scoped to its owner.
func (r *implRepository) DeleteDevice(ctx context.Context, opt repo.DeleteDeviceOptions) error {
	query := `DELETE FROM user_devices WHERE id = $1 AND user_id = $2`
	if _, err := r.db.ExecContext(ctx, query, opt.ID, opt.UserID); err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("DeleteDevice"), err)
		return repo.ErrFailedToDeleteDevice
	}
	return nil
}
