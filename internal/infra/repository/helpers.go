package repository

import "driveshare/internal/pkg/pgconv"

func isNoRows(err error) bool {
	return pgconv.IsNoRows(err)
}
