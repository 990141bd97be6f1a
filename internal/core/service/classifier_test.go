package service

import (
	"testing"

	"github.com/optiifreight/quoting-engine/internal/core/domain"
)

func TestClassifier_DenseCargoBillsByWeight(t *testing.T) {
	cls := NewClassifier(DefaultDensityThreshold)

	// 2000 lb in 8×4×4 ft = 128 ft³ → 15.625 lb/ft³
	got := cls.Classify(domain.ShipmentSpec{WeightLb: 2000, LengthFt: 8, WidthFt: 4, HeightFt: 4})

	if got.VolumeCubicFt != 128 {
		t.Errorf("volume: want 128, got %v", got.VolumeCubicFt)
	}
	if got.DensityLbPerCubicFt != 15.625 {
		t.Errorf("density: want 15.625, got %v", got.DensityLbPerCubicFt)
	}
	if got.Basis != domain.BasisWeight {
		t.Errorf("basis: want WEIGHT, got %s", got.Basis)
	}
}

func TestClassifier_LightCargoBillsByVolume(t *testing.T) {
	cls := NewClassifier(DefaultDensityThreshold)

	// 500 lb in 128 ft³ → 3.90625 lb/ft³
	got := cls.Classify(domain.ShipmentSpec{WeightLb: 500, LengthFt: 8, WidthFt: 4, HeightFt: 4})

	if got.Basis != domain.BasisVolume {
		t.Errorf("basis: want VOLUME, got %s", got.Basis)
	}
	if got.DensityLbPerCubicFt != 3.90625 {
		t.Errorf("density: want 3.90625, got %v", got.DensityLbPerCubicFt)
	}
}

func TestClassifier_ThresholdBoundary(t *testing.T) {
	cls := NewClassifier(12.5)

	cases := []struct {
		name     string
		weightLb float64
		want     domain.ChargeableBasis
	}{
		{"exactly at threshold", 12.5, domain.BasisWeight},
		{"just below threshold", 12.49999, domain.BasisVolume},
		{"just above threshold", 12.50001, domain.BasisWeight},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			// 1×1×1 ft box: density equals weight
			got := cls.Classify(domain.ShipmentSpec{WeightLb: tc.weightLb, LengthFt: 1, WidthFt: 1, HeightFt: 1})
			if got.Basis != tc.want {
				t.Errorf("weight %v: want %s, got %s", tc.weightLb, tc.want, got.Basis)
			}
		})
	}
}

func TestClassifier_ZeroVolumeGuard(t *testing.T) {
	cls := NewClassifier(DefaultDensityThreshold)

	got := cls.Classify(domain.ShipmentSpec{WeightLb: 100, LengthFt: 0, WidthFt: 4, HeightFt: 4})

	if got.DensityLbPerCubicFt != 0 {
		t.Errorf("zero volume must yield density 0, got %v", got.DensityLbPerCubicFt)
	}
	if got.Basis != domain.BasisVolume {
		t.Errorf("zero density must classify VOLUME, got %s", got.Basis)
	}
}

func TestClassifier_ConfigurableThreshold(t *testing.T) {
	// 500 lb in 128 ft³ is 3.90625 lb/ft³: VOLUME under the default
	// threshold, WEIGHT once the threshold drops below the density.
	spec := domain.ShipmentSpec{WeightLb: 500, LengthFt: 8, WidthFt: 4, HeightFt: 4}

	if got := NewClassifier(5).Classify(spec); got.Basis != domain.BasisVolume {
		t.Errorf("threshold 5: want VOLUME, got %s", got.Basis)
	}
	if got := NewClassifier(3).Classify(spec); got.Basis != domain.BasisWeight {
		t.Errorf("threshold 3: want WEIGHT, got %s", got.Basis)
	}
}
