package matching

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/mathieu/talent-match/internal/types"
)

func TestEvaluateLocation_BothFullRemote(t *testing.T) {
	talent := remoteTalent("Go")
	offer := remoteOffer("Go")

	detail := EvaluateLocation(talent, offer, DefaultParams())

	assert.Equal(t, types.LocationOK, detail.Status)
	assert.Equal(t, 100, detail.Score)
}

func TestEvaluateLocation_TeleworkAliasIsFullRemote(t *testing.T) {
	talent := remoteTalent("Go")
	talent.Mobilite = types.MobilityTeleworkAlias
	offer := remoteOffer("Go")

	detail := EvaluateLocation(talent, offer, DefaultParams())

	assert.Equal(t, types.LocationOK, detail.Status)
}

func TestEvaluateLocation_FlexibleMatchesAnything(t *testing.T) {
	talent := remoteTalent("Go")
	talent.Mobilite = types.MobilityFlexible
	offer := remoteOffer("Go")
	offer.Mobilite = types.MobilityOnSite
	offer.Lieu = sptr("Lyon")

	detail := EvaluateLocation(talent, offer, DefaultParams())

	assert.Equal(t, types.LocationOK, detail.Status)
	assert.Equal(t, 100, detail.Score)
}

func TestEvaluateLocation_SameCityOnSite(t *testing.T) {
	talent := remoteTalent("Go")
	talent.Mobilite = types.MobilityOnSite
	talent.Ville = sptr("paris")
	offer := remoteOffer("Go")
	offer.Mobilite = types.MobilityOnSite
	offer.Lieu = sptr("Paris")

	detail := EvaluateLocation(talent, offer, DefaultParams())

	assert.Equal(t, types.LocationOK, detail.Status)
	assert.Equal(t, 100, detail.Score)
}

func TestEvaluateLocation_DifferentCityOnSiteIsIncompatible(t *testing.T) {
	talent := remoteTalent("Go")
	talent.Mobilite = types.MobilityOnSite
	talent.Ville = sptr("Paris")
	offer := remoteOffer("Go")
	offer.Mobilite = types.MobilityOnSite
	offer.Lieu = sptr("Lyon")

	detail := EvaluateLocation(talent, offer, DefaultParams())

	assert.Equal(t, types.LocationIncompatible, detail.Status)
	assert.Equal(t, 20, detail.Score)
}

func TestEvaluateLocation_RemoteTalentOnSiteOfferIsIncompatible(t *testing.T) {
	talent := remoteTalent("Go")
	offer := remoteOffer("Go")
	offer.Mobilite = types.MobilityHybrid
	offer.Lieu = sptr("Bordeaux")

	detail := EvaluateLocation(talent, offer, DefaultParams())

	assert.Equal(t, types.LocationIncompatible, detail.Status)
}

func TestEvaluateLocation_OnSiteTalentRemoteOfferIsDistantOnly(t *testing.T) {
	// Preference mismatch, not an impossibility: must not trip the apply gate.
	talent := remoteTalent("Go")
	talent.Mobilite = types.MobilityOnSite
	talent.Ville = sptr("Paris")
	offer := remoteOffer("Go")

	detail := EvaluateLocation(talent, offer, DefaultParams())

	assert.Equal(t, types.LocationDistant, detail.Status)
	assert.Equal(t, 20, detail.Score)
}

func TestEvaluateLocation_UnknownCityDegradesWithoutGating(t *testing.T) {
	talent := remoteTalent("Go")
	talent.Mobilite = types.MobilityOnSite
	offer := remoteOffer("Go")
	offer.Mobilite = types.MobilityOnSite
	offer.Lieu = sptr("Nantes")

	detail := EvaluateLocation(talent, offer, DefaultParams())

	assert.Equal(t, types.LocationDistant, detail.Status)
	assert.Equal(t, 20, detail.Score)
}
