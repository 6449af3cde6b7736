package nordpool

import "time"

type dayAheadResponse struct {
	DeliveryDateCET  string          `json:"deliveryDateCET"`
	Version          int             `json:"version"`
	UpdatedAt        time.Time       `json:"updatedAt"`
	Market           string          `json:"market"`
	DeliveryAreas    []string        `json:"deliveryAreas"`
	Currency         string          `json:"currency"`
	MultiAreaEntries []areaEntry     `json:"multiAreaEntries"`
	AreaStates       []areaStateInfo `json:"areaStates"`
}

type areaEntry struct {
	DeliveryStart time.Time          `json:"deliveryStart"`
	DeliveryEnd   time.Time          `json:"deliveryEnd"`
	EntryPerArea  map[string]float64 `json:"entryPerArea"`
}

type areaStateInfo struct {
	State string   `json:"state"`
	Areas []string `json:"areas"`
}
