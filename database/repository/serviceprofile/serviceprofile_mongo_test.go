package serviceprofileRepo

import (
	"testing"

	"carelink/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson"
)

// A facility that stored a hospital profile and then switches to pharmacy
// must not keep a live hospitalDetails field. Upsert replaces the document
// wholesale, so the replacement it hands to Mongo has to carry exactly the
// active detail key.
func TestUpsertReplacementCarriesOnlyActiveDetail(t *testing.T) {
	profile := &models.ServiceProfile{
		FacilityID:   "fac-1",
		FacilityType: models.FacilityPharmacy,
		Pharmacy: &models.PharmacyDetails{
			LicensedPharmacistOnSite: true,
			OperatingDays:            []string{"Mon", "Tue"},
			OpeningTime:              "08:00",
			ClosingTime:              "18:00",
		},
	}

	raw, err := bson.Marshal(profile)
	require.NoError(t, err)
	var doc bson.M
	require.NoError(t, bson.Unmarshal(raw, &doc))

	assert.Contains(t, doc, "pharmacyDetails")
	inactive := []string{
		"hospitalDetails",
		"laboratoryDetails",
		"ambulanceDetails",
		"insuranceDetails",
		"specialistClinicDetails",
	}
	for _, key := range inactive {
		assert.NotContains(t, doc, key)
	}
}
