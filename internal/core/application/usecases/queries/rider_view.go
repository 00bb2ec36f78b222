package queries

import (
	"database/sql"
	"time"

	"quickdrop/internal/core/domain/model/kernel"

	"github.com/google/uuid"
)

type RiderView struct {
	ID               kernel.UUID
	Email            string
	Name             string
	Phone            string
	Age              int
	Region           string
	District         string
	NationalID       string
	BikeBrand        string
	BikeRegistration string
	Status           string
	WorkStatus       string
	CreatedAt        time.Time
}

const riderColumns = `
	id,
	email,
	name,
	phone,
	age,
	region,
	district,
	national_id,
	bike_brand,
	bike_registration,
	status,
	work_status,
	created_at`

func scanRiders(rows *sql.Rows) ([]RiderView, error) {
	defer rows.Close()

	riders := make([]RiderView, 0)
	for rows.Next() {
		var v RiderView
		var id uuid.UUID

		err := rows.Scan(
			&id,
			&v.Email,
			&v.Name,
			&v.Phone,
			&v.Age,
			&v.Region,
			&v.District,
			&v.NationalID,
			&v.BikeBrand,
			&v.BikeRegistration,
			&v.Status,
			&v.WorkStatus,
			&v.CreatedAt,
		)
		if err != nil {
			return nil, err
		}

		if v.ID, err = kernel.UUIDFromBytes(id[:]); err != nil {
			return nil, err
		}
		riders = append(riders, v)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}
	return riders, nil
}
