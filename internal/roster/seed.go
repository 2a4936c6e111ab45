package roster

import (
	"time"

	"adminboard/internal/models"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func datePtr(y int, m time.Month, d int) *time.Time {
	t := date(y, m, d)
	return &t
}

// Seed returns the fixed demo roster loaded on the first fetch.
func Seed() []models.ManagedUser {
	return []models.ManagedUser{
		{
			User: models.User{
				ID: "1", Email: "admin@demo.com", Name: "Admin User",
				Role: models.RoleAdmin, CreatedAt: date(2024, 1, 1),
			},
			Status:    models.StatusActive,
			LastLogin: datePtr(2024, 12, 25),
		},
		{
			User: models.User{
				ID: "2", Email: "manager@demo.com", Name: "Sarah Johnson",
				Role: models.RoleManager, CreatedAt: date(2024, 1, 15),
			},
			Status:    models.StatusActive,
			LastLogin: datePtr(2024, 12, 24),
		},
		{
			User: models.User{
				ID: "3", Email: "user@demo.com", Name: "Michael Chen",
				Role: models.RoleUser, CreatedAt: date(2024, 2, 1),
			},
			Status:    models.StatusActive,
			LastLogin: datePtr(2024, 12, 23),
		},
		{
			User: models.User{
				ID: "4", Email: "emily.davis@demo.com", Name: "Emily Davis",
				Role: models.RoleUser, CreatedAt: date(2024, 11, 20),
			},
			Status: models.StatusPending,
		},
		{
			User: models.User{
				ID: "5", Email: "james.wilson@demo.com", Name: "James Wilson",
				Role: models.RoleManager, CreatedAt: date(2024, 3, 10),
			},
			Status:    models.StatusInactive,
			LastLogin: datePtr(2024, 10, 15),
		},
		{
			User: models.User{
				ID: "6", Email: "olivia.brown@demo.com", Name: "Olivia Brown",
				Role: models.RoleUser, CreatedAt: date(2024, 5, 22),
			},
			Status:    models.StatusActive,
			LastLogin: datePtr(2024, 12, 20),
		},
		{
			User: models.User{
				ID: "7", Email: "daniel.garcia@demo.com", Name: "Daniel Garcia",
				Role: models.RoleUser, CreatedAt: date(2024, 6, 15),
			},
			Status:    models.StatusActive,
			LastLogin: datePtr(2024, 12, 22),
		},
		{
			User: models.User{
				ID: "8", Email: "sophia.martinez@demo.com", Name: "Sophia Martinez",
				Role: models.RoleManager, CreatedAt: date(2024, 4, 8),
			},
			Status:    models.StatusActive,
			LastLogin: datePtr(2024, 12, 24),
		},
	}
}
