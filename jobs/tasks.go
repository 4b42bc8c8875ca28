package jobs

import (
	"encoding/json"

	"github.com/hibiken/asynq"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskTypeShipmentGeocode resolves the address of a single shipment.
	TaskTypeShipmentGeocode = "shipment:geocode"
	// TaskTypeGeocodeBackfill sweeps every shipment missing an address.
	TaskTypeGeocodeBackfill = "shipment:geocode_backfill"
)

// ShipmentGeocodePayload identifies the shipment to enrich.
type ShipmentGeocodePayload struct {
	ShipmentID string `json:"shipment_id"`
}

// NewShipmentGeocodeTask constructs an Asynq task for a single shipment.
func NewShipmentGeocodeTask(payload ShipmentGeocodePayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskTypeShipmentGeocode, body, asynq.Queue(QueueDefault)), nil
}

// NewGeocodeBackfillTask constructs the periodic backfill task.
func NewGeocodeBackfillTask() (*asynq.Task, error) {
	return asynq.NewTask(TaskTypeGeocodeBackfill, nil, asynq.Queue(QueueDefault)), nil
}
