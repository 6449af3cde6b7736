package appliance

import "testing"

func TestByID(t *testing.T) {
	c, ok := ByID("dishwasher")
	if !ok {
		t.Fatal("expected dishwasher category")
	}
	if c.KWh != 1.1 {
		t.Errorf("dishwasher KWh = %v, want 1.1", c.KWh)
	}

	if _, ok := ByID("sauna"); ok {
		t.Error("unknown id must not resolve")
	}
}

func TestCostAt(t *testing.T) {
	c, _ := ByID("car")
	if got := c.CostAt(100); got != 55 {
		t.Errorf("car at 100 öre = %v, want 55", got)
	}
}

func TestSavingsAtCanBeNegative(t *testing.T) {
	c, _ := ByID("bath")
	if got := c.SavingsAt(100, 200); got >= 0 {
		t.Errorf("savings = %v, want negative when the optimized price is higher", got)
	}
}
