package repository

import (
	"time"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
)

type RepairJobEntity struct {
	ID                 string          `bson:"_id"`
	CustomerID         string          `bson:"customer_id"`
	CustomerName       string          `bson:"customer_name"`
	CustomerPhone      string          `bson:"customer_phone"`
	DeviceBrand        string          `bson:"device_brand"`
	DeviceModel        string          `bson:"device_model"`
	ProblemDescription string          `bson:"problem_description"`
	Status             model.JobStatus `bson:"status"`
	PhotoURLs          []string        `bson:"photo_urls,omitempty"`
	CreatedAt          time.Time       `bson:"created_at"`
	CompletedAt        *time.Time      `bson:"completed_at,omitempty"`
}
