package bloom

import "testing"

func TestOptimalParamsCommonCases(t *testing.T) {
	// n=1000, p=1% → m=9586, k=7 (the canonical sizing example)
	m, k := OptimalParams(1000, 0.01)
	if m != 9586 {
		t.Errorf("n=1000,p=0.01: got m=%d, want 9586", m)
	}
	if k != 7 {
		t.Errorf("n=1000,p=0.01: got k=%d, want 7", k)
	}

	// n=1, p=1% → m≈10, k≈7
	m, k = OptimalParams(1, 0.01)
	if m < 10 || k != 7 {
		t.Errorf("n=1,p=0.01: got m=%d k=%d; want m>=10 k=7", m, k)
	}

	// n=1e6, p=1% → m≈9.585e6 bits, k=7
	m, k = OptimalParams(1_000_000, 0.01)
	if m < 9_500_000 || m > 9_700_000 {
		t.Errorf("n=1e6,p=0.01: unexpected m=%d (expected around 9.6e6)", m)
	}
	if k != 7 {
		t.Errorf("n=1e6,p=0.01: got k=%d, want 7", k)
	}

	// p=0.5 → the formula rounds k down to 1
	m, k = OptimalParams(10_000, 0.5)
	if k != 1 {
		t.Errorf("p=0.5: got k=%d, want 1", k)
	}
	if m == 0 {
		t.Errorf("p=0.5: m should be >= 1")
	}
}

func TestOptimalParamsDeterminism(t *testing.T) {
	m1, k1 := OptimalParams(12345, 0.003)
	for range 10 {
		m2, k2 := OptimalParams(12345, 0.003)
		if m1 != m2 || k1 != k2 {
			t.Fatalf("sizing not deterministic: (%d,%d) vs (%d,%d)", m1, k1, m2, k2)
		}
	}
}

func TestOptimalParamsClampingAndDefaults(t *testing.T) {
	// n=0 → treated as 1; invalid p (<=0) defaults to 0.01
	m, k := OptimalParams(0, 0)
	if m == 0 || k == 0 {
		t.Errorf("n=0,p=0: expected m>=1 and k>=1; got m=%d k=%d", m, k)
	}

	// p>=1 → defaults to 0.01
	m, k = OptimalParams(100, 1.0)
	if m == 0 || k == 0 {
		t.Errorf("p>=1 default: expected m>=1 and k>=1; got m=%d k=%d", m, k)
	}
}

func TestEstimateFalsePositiveRate(t *testing.T) {
	m, k := OptimalParams(1000, 0.01)

	// Empty filter → 0
	if rate := EstimateFalsePositiveRate(m, k, 0); rate != 0 {
		t.Errorf("expected 0 rate for empty filter, got %f", rate)
	}

	// At capacity the estimate should be near the target
	rate := EstimateFalsePositiveRate(m, k, 1000)
	if rate < 0.005 || rate > 0.02 {
		t.Errorf("at-capacity estimate %f not near target 0.01", rate)
	}

	// Overfilling raises the rate above the target
	over := EstimateFalsePositiveRate(m, k, 5000)
	if over <= rate {
		t.Errorf("overfilled estimate %f should exceed at-capacity estimate %f", over, rate)
	}
}
