package repository

import (
	"go.mongodb.org/mongo-driver/v2/bson"

	"github.com/Vivekjangir90/mobile-repair-shop/internal/model"
)

func EntityToModel(e *RepairJobEntity) *model.RepairJob {
	if e == nil {
		return nil
	}

	return &model.RepairJob{
		ID:                 e.ID,
		CustomerID:         e.CustomerID,
		CustomerName:       e.CustomerName,
		CustomerPhone:      e.CustomerPhone,
		DeviceBrand:        e.DeviceBrand,
		DeviceModel:        e.DeviceModel,
		ProblemDescription: e.ProblemDescription,
		Status:             e.Status,
		PhotoURLs:          e.PhotoURLs,
		CreatedAt:          e.CreatedAt,
		CompletedAt:        e.CompletedAt,
	}
}

func EntityFromModel(j *model.RepairJob) *RepairJobEntity {
	if j == nil {
		return nil
	}

	return &RepairJobEntity{
		ID:                 j.ID,
		CustomerID:         j.CustomerID,
		CustomerName:       j.CustomerName,
		CustomerPhone:      j.CustomerPhone,
		DeviceBrand:        j.DeviceBrand,
		DeviceModel:        j.DeviceModel,
		ProblemDescription: j.ProblemDescription,
		Status:             j.Status,
		PhotoURLs:          j.PhotoURLs,
		CreatedAt:          j.CreatedAt,
		CompletedAt:        j.CompletedAt,
	}
}

// BuildUpdateDocument maps a partial update onto a mongo update
// document. Only fields present in upd appear in $set; photo URLs
// accumulate through $push.
func BuildUpdateDocument(upd model.RepairJobUpdate) bson.M {
	set := bson.M{}

	if upd.Status != nil {
		set["status"] = *upd.Status
	}
	if upd.ProblemDescription != nil {
		set["problem_description"] = *upd.ProblemDescription
	}
	if upd.DeviceBrand != nil {
		set["device_brand"] = *upd.DeviceBrand
	}
	if upd.DeviceModel != nil {
		set["device_model"] = *upd.DeviceModel
	}
	if upd.CompletedAt != nil {
		set["completed_at"] = *upd.CompletedAt
	}

	doc := bson.M{}
	if len(set) > 0 {
		doc["$set"] = set
	}
	if upd.AddPhotoURL != nil {
		doc["$push"] = bson.M{"photo_urls": *upd.AddPhotoURL}
	}

	return doc
}
