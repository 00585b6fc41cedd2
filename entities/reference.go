package entities

import "time"

type State struct {
	StateID   uint   `gorm:"primaryKey" json:"state_id"`
	Name      string `gorm:"uniqueIndex" json:"name"`
	Code      string `json:"code"`
	CreatedAt time.Time
}

type Crop struct {
	CropID        uint     `gorm:"primaryKey" json:"crop_id"`
	Name          string   `gorm:"uniqueIndex" json:"name"`
	Seasons       []string `gorm:"serializer:json" json:"seasons"`
	AllowedStates []string `gorm:"serializer:json" json:"allowedStates"`
	Description   string   `json:"description"`
	CreatedAt     time.Time
}

type Vendor struct {
	Name     string `json:"name"`
	Location string `json:"location"`
	Contact  string `json:"contact"`
}

type Product struct {
	ProductID         uint     `gorm:"primaryKey" json:"product_id"`
	Name              string   `json:"name"`
	Type              string   `json:"type"` // fertilizer|pesticide|other
	ActiveIngredients string   `json:"activeIngredients"`
	Approval          string   `json:"approval"`
	PriceMRP          string   `json:"priceMRP"`
	VendorInfo        []Vendor `gorm:"serializer:json" json:"vendorInfo"`
	CreatedAt         time.Time
}

type TimelineTask struct {
	TaskID              uint   `gorm:"primaryKey" json:"task_id"`
	CropID              uint   `gorm:"index" json:"crop_id"`
	Season              string `json:"season"`
	Week                int    `json:"week"`
	Task                string `json:"task"`
	Description         string `json:"description"`
	RecommendedProducts []uint `gorm:"serializer:json" json:"recommendedProducts"`
	CreatedAt           time.Time
}
