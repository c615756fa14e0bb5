package scoring

import (
	"math"
	"testing"
)

func almost(t *testing.T, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-9 {
		t.Fatalf("got %v, want %v", got, want)
	}
}

func TestComputeBatter(t *testing.T) {
	b := Bundle{
		StatRuns: Float(80),
		StatHR:   Float(60),
		StatRBI:  Float(40),
		StatSB:   Float(20),
		StatAVG:  Float(90),
	}
	almost(t, Compute(CategoryBatter, b), 57)
}

func TestComputePitcherUsesBestReliefRole(t *testing.T) {
	b := Bundle{
		StatStrikeouts: Float(80),
		StatQS:         Float(60),
		StatSV:         Float(40),
		StatHLD:        Float(70),
		StatERA:        Float(30),
		StatWHIP:       Float(40),
	}
	// HLD 70 beats SV 40; ERA and WHIP re-invert on top of stored rank.
	almost(t, Compute(CategoryPitcher, b), 68.5)
}

func TestComputeSpeed(t *testing.T) {
	b := Bundle{
		StatSB:    Float(90),
		StatOBP:   Float(70),
		StatAVG:   Float(60),
		StatKRate: Float(80),
		StatRuns:  Float(50),
	}
	almost(t, Compute(CategorySpeed, b), 115.5)
}

func TestComputeContact(t *testing.T) {
	b := Bundle{
		StatAVG:    Float(80),
		StatOBP:    Float(60),
		StatBBRate: Float(40),
		StatKRate:  Float(20),
	}
	almost(t, Compute(CategoryContact, b), 79)
}

func TestComputePower(t *testing.T) {
	b := Bundle{
		StatHR:    Float(90),
		StatISO:   Float(80),
		StatSLG:   Float(70),
		StatKRate: Float(60),
		StatRBI:   Float(50),
	}
	almost(t, Compute(CategoryPower, b), 115)
}

func TestComputeStarter(t *testing.T) {
	b := Bundle{
		StatKPer9:  Float(80),
		StatBBPer9: Float(40),
		StatQS:     Float(70),
		StatFIP:    Float(60),
		StatWHIP:   Float(50),
		StatERA:    Float(40),
	}
	almost(t, Compute(CategoryStarter, b), 71.5)
}

func TestComputeReliever(t *testing.T) {
	b := Bundle{
		StatSV:     Float(20),
		StatHLD:    Float(90),
		StatKPer9:  Float(60),
		StatWHIP:   Float(40),
		StatFIP:    Float(80),
		StatBBPer9: Float(30),
	}
	almost(t, Compute(CategoryReliever, b), 80.5)
}

func TestComputeNRFI(t *testing.T) {
	b := Bundle{
		StatKPer9:  Float(80),
		StatFIP:    Float(60),
		StatOppOPS: Float(30),
		StatERA:    Float(50),
	}
	almost(t, Compute(CategoryNRFI, b), 66.5)
}

func TestComputeIsDeterministic(t *testing.T) {
	b := Bundle{
		StatSB:    Float(73.4),
		StatOBP:   Float(61.2),
		StatKRate: Float(48.8),
	}
	first := Compute(CategorySpeed, b)
	for i := 0; i < 10; i++ {
		if got := Compute(CategorySpeed, b); got != first {
			t.Fatalf("run %d diverged: %v vs %v", i, got, first)
		}
	}
}

func TestComputeMissingInputsAreNeutral(t *testing.T) {
	// Every batter weight sums to 1.0, so an empty bundle scores exactly 50.
	almost(t, Compute(CategoryBatter, Bundle{}), 50)
	// A nil entry behaves like an absent one.
	almost(t, Compute(CategoryBatter, Bundle{StatRuns: nil}), 50)
}

func TestComputeAltFallsBackThroughNeutral(t *testing.T) {
	withSV := Bundle{StatSV: Float(80)}
	withHLD := Bundle{StatHLD: Float(80)}
	svTerm := Compute(CategoryReliever, withSV)
	hldTerm := Compute(CategoryReliever, withHLD)
	if svTerm != hldTerm {
		t.Fatalf("sv-only and hld-only should score alike: %v vs %v", svTerm, hldTerm)
	}
	// An alt below neutral must not drag the term under 50.
	low := Compute(CategoryReliever, Bundle{StatHLD: Float(10)})
	neutral := Compute(CategoryReliever, Bundle{})
	if low != neutral {
		t.Fatalf("alt below neutral should not lower the term: %v vs %v", low, neutral)
	}
}

func TestParseCategory(t *testing.T) {
	for _, raw := range []string{"batter", "pitcher", "speed", "contact", "power", "starter", "reliever", "nrfi"} {
		if _, ok := ParseCategory(raw); !ok {
			t.Fatalf("category %q should parse", raw)
		}
	}
	if _, ok := ParseCategory("defense"); ok {
		t.Fatal("unknown category should not parse")
	}
}

func TestCategoryPositions(t *testing.T) {
	if !CategorySpeed.IsBatter() || CategoryStarter.IsBatter() {
		t.Fatal("position context wrong")
	}
	if CategoryPower.Position() != "B" || CategoryReliever.Position() != "P" {
		t.Fatal("position mapping wrong")
	}
}
