package billing

import (
	"fmt"

	"flatfundpro/internal/pkg/consts"
	"flatfundpro/internal/pkg/models"
	storeModels "flatfundpro/internal/pkg/store/models"
)

// ResolveBaseAmount computes the base amount a flat owes for a collection
// under the owning apartment's collection mode. A nil amount signals
// "cannot compute, missing configuration", never zero; the returned
// ConfigurationError names the field an admin has to fix.
func ResolveBaseAmount(
	apartment *storeModels.Apartments,
	collection *storeModels.ExpectedCollections,
	flat *storeModels.Flats,
) (*float64, error) {

	switch apartment.CollectionMode {
	case consts.CollectionModeFlat:
		amount := 0.0
		if collection.AmountDue != nil {
			amount = *collection.AmountDue
		}
		return &amount, nil

	case consts.CollectionModeArea:
		if collection.RatePerSqft == nil || *collection.RatePerSqft == 0 {
			return nil, &models.ConfigurationError{
				Field:  "rate_per_sqft",
				Reason: fmt.Sprintf("collection %q has no per-sqft rate", collection.Name),
			}
		}
		if flat.BuiltUpArea == nil || *flat.BuiltUpArea == 0 {
			return nil, &models.ConfigurationError{
				Field:  "built_up_area",
				Reason: fmt.Sprintf("flat %q has no built-up area", flat.FlatNumber),
			}
		}
		amount := *collection.RatePerSqft * *flat.BuiltUpArea
		return &amount, nil

	case consts.CollectionModeFlatType:
		if len(collection.FlatTypeRates) == 0 {
			return nil, &models.ConfigurationError{
				Field:  "flat_type_rates",
				Reason: fmt.Sprintf("collection %q has no flat-type rates", collection.Name),
			}
		}
		rate, ok := collection.FlatTypeRates[flat.FlatType]
		if !ok {
			return nil, &models.ConfigurationError{
				Field:  "flat_type_rates",
				Reason: fmt.Sprintf("no rate for flat type %q", flat.FlatType),
			}
		}
		return &rate, nil

	default:
		return nil, &models.ConfigurationError{
			Field:  "collection_mode",
			Reason: fmt.Sprintf("unknown collection mode %q", apartment.CollectionMode),
		}
	}
}
