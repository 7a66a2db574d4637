package models

import (
	"time"

	"flatfundpro/internal/pkg/consts"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Apartments struct {
	ID             primitive.ObjectID    `bson:"_id,omitempty"`
	Name           string                `bson:"name"`
	CollectionMode consts.CollectionMode `bson:"collectionMode"`
	Status         string                `bson:"status"`
	CreatedAt      time.Time             `bson:"createdAt"`
}

type Blocks struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	ApartmentID primitive.ObjectID `bson:"apartmentId"`
	Name        string             `bson:"name"`
}

type Flats struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	BlockID     primitive.ObjectID `bson:"blockId"`
	FlatNumber  string             `bson:"flatNumber"`
	BuiltUpArea *float64           `bson:"builtUpArea,omitempty"`
	FlatType    string             `bson:"flatType,omitempty"`
}

// ExpectedCollections is a billing cycle ("Q1 Maintenance") with a due date
// and the rate configuration for the owning apartment's collection mode.
// Exactly one of AmountDue, RatePerSqft, FlatTypeRates is authoritative,
// selected by Apartments.CollectionMode; the other two may be absent.
type ExpectedCollections struct {
	ID            primitive.ObjectID `bson:"_id,omitempty"`
	ApartmentID   primitive.ObjectID `bson:"apartmentId"`
	Name          string             `bson:"name"`
	PaymentType   string             `bson:"paymentType"`
	Frequency     consts.Frequency   `bson:"frequency"`
	AmountDue     *float64           `bson:"amountDue,omitempty"`
	RatePerSqft   *float64           `bson:"ratePerSqft,omitempty"`
	FlatTypeRates map[string]float64 `bson:"flatTypeRates,omitempty"`
	DueDate       time.Time          `bson:"dueDate"`
	DailyFine     float64            `bson:"dailyFine"`
	IsActive      bool               `bson:"isActive"`
	CreatedAt     time.Time          `bson:"createdAt"`
}

// IdentityMappings binds a flat to its authoritative contact. At most one
// mapping per flat; email is the stable key once created and is never
// silently overwritten. Never deleted by this engine.
type IdentityMappings struct {
	ID            primitive.ObjectID  `bson:"_id,omitempty"`
	ApartmentID   primitive.ObjectID  `bson:"apartmentId"`
	BlockID       primitive.ObjectID  `bson:"blockId"`
	FlatID        primitive.ObjectID  `bson:"flatId"`
	Email         string              `bson:"email"`
	Mobile        string              `bson:"mobile,omitempty"`
	Name          string              `bson:"name,omitempty"`
	OccupantType  consts.OccupantType `bson:"occupantType"`
	WhatsappOptIn bool                `bson:"whatsappOptIn"`
	CreatedAt     time.Time           `bson:"createdAt"`
	UpdatedAt     *time.Time          `bson:"updatedAt,omitempty"`
}

type PaymentSubmissions struct {
	ID                   primitive.ObjectID  `bson:"_id,omitempty"`
	ApartmentID          primitive.ObjectID  `bson:"apartmentId"`
	BlockID              primitive.ObjectID  `bson:"blockId"`
	FlatID               primitive.ObjectID  `bson:"flatId"`
	ExpectedCollectionID primitive.ObjectID  `bson:"expectedCollectionId"`
	Email                string              `bson:"email"`
	ContactNumber        string              `bson:"contactNumber,omitempty"`
	PaymentAmount        float64             `bson:"paymentAmount"`
	PaymentDate          *time.Time          `bson:"paymentDate,omitempty"`
	OccupantType         consts.OccupantType `bson:"occupantType"`
	CreatedAt            time.Time           `bson:"createdAt"`
}

// ExistingSubmissionSummary describes the prior submission that makes a new
// attempt a duplicate. Transient, never persisted.
type ExistingSubmissionSummary struct {
	CollectionName string     `bson:"-" json:"collectionName"`
	FiscalQuarter  string     `bson:"-" json:"fiscalQuarter"`
	PaymentDate    *time.Time `bson:"-" json:"paymentDate,omitempty"`
}
