package featureprep

import (
	"testing"
	"time"

	"github.com/aouyang1/go-featureprep/dataset"
	"github.com/aouyang1/go-featureprep/selector"
	"github.com/goccy/go-json"
	"github.com/pkg/profile"
)

var benchBundle *Bundle

func setupBenchDataset(minutes int) (*dataset.Dataset, error) {
	t := dataset.GenerateT(minutes, time.Minute, time.Now)
	period := 86400.0
	return dataset.New(t,
		dataset.GenerateWave("load", t, 10.5, period, 98.3),
		dataset.GenerateNoise("latency", minutes, 20.0, 3.2),
		dataset.GenerateStates("mode", minutes, 90, "idle", "busy", "degraded"),
		dataset.GenerateWave("temperature", t, 4.0, period/2.0, 21.0),
	)
}

func BenchmarkValidate(b *testing.B) {
	ds, err := setupBenchDataset(28 * 24 * 60)
	if err != nil {
		panic(err)
	}

	opt, err := DecodeOptions([]byte(`{
		"continuous": ["load", "latency", "temperature"],
		"discrete": ["mode"],
		"fit_options": {"windowSize": 60, "stepSize": 15}
	}`))
	if err != nil {
		panic(err)
	}

	b.ResetTimer()
	defer profile.Start(profile.CPUProfile, profile.ProfilePath(".")).Stop()
	for b.Loop() {
		benchBundle, err = Validate(ds, opt)
		if err != nil {
			panic(err)
		}
	}
}

func BenchmarkBundleJSON(b *testing.B) {
	ds, err := setupBenchDataset(7 * 24 * 60)
	if err != nil {
		panic(err)
	}
	bundle, err := Validate(ds, &Options{
		Continuous: selector.Names{"load", "temperature"},
		Discrete:   selector.Names{"mode"},
	})
	if err != nil {
		panic(err)
	}

	b.ResetTimer()
	for b.Loop() {
		if _, err := json.Marshal(bundle); err != nil {
			panic(err)
		}
	}
}
