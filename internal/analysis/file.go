package analysis

import (
	"context"
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/claraeyoon/phasenet-go/internal/conf"
	"github.com/claraeyoon/phasenet-go/internal/datastore"
	"github.com/claraeyoon/phasenet-go/internal/errors"
	"github.com/claraeyoon/phasenet-go/internal/logging"
	"github.com/claraeyoon/phasenet-go/internal/mqtt"
	"github.com/claraeyoon/phasenet-go/internal/observability"
	"github.com/claraeyoon/phasenet-go/internal/phasenet"
	"github.com/claraeyoon/phasenet-go/internal/seis"
	"github.com/google/uuid"
)

// FileAnalysis analyzes one waveform record file and outputs the resulting
// picks to the console and, when configured, the datastore and MQTT.
func FileAnalysis(ctx context.Context, settings *conf.Settings, inputPath string) error {
	log := logging.ForService("analysis")

	if err := validateRecordFile(inputPath); err != nil {
		return err
	}

	metrics, err := observability.NewMetrics()
	if err != nil {
		return err
	}

	if settings.Telemetry.Enabled {
		endpoint, err := observability.NewEndpoint(settings, metrics)
		if err != nil {
			return err
		}
		var wg sync.WaitGroup
		quit := make(chan struct{})
		endpoint.Start(&wg, quit)
		defer func() {
			close(quit)
			wg.Wait()
		}()
	}

	network, err := buildNetwork(settings)
	if err != nil {
		return err
	}
	metrics.PhaseNet.ModelLoadedGauge.Set(1)

	stream, err := seis.ReadRecord(inputPath)
	if err != nil {
		return err
	}

	start := time.Now()
	annotations, err := network.Annotate(stream, settings.Model.Overlap)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)
	metrics.PhaseNet.AnnotateDuration.Observe(elapsed.Seconds())

	picks := network.ClassifyStream(annotations, &settings.Model)
	for _, p := range picks {
		metrics.PhaseNet.PickCounter.WithLabelValues(p.Phase).Inc()
	}

	log.Info("record analyzed",
		"input", inputPath,
		"samples", len(stream[0].Data),
		"picks", len(picks),
		"duration_ms", elapsed.Milliseconds())

	printPicks(picks)

	if store := datastore.New(settings); store != nil {
		if err := storePicks(store, settings, picks, metrics); err != nil {
			return err
		}
	}

	if settings.MQTT.Enabled {
		if err := publishPicks(ctx, settings, picks, metrics); err != nil {
			return err
		}
	}

	return nil
}

func validateRecordFile(path string) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.New(fmt.Errorf("accessing record %s: %w", path, err)).
			Component("analysis").
			Category(errors.CategoryFileIO).
			Context("path", path).
			Build()
	}
	if info.IsDir() {
		return errors.Newf("path %s is a directory, not a record file", path).
			Component("analysis").
			Category(errors.CategoryFileIO).
			Build()
	}
	if info.Size() == 0 {
		return errors.Newf("record file %s is empty", path).
			Component("analysis").
			Category(errors.CategoryFileIO).
			Build()
	}
	return nil
}

func printPicks(picks []phasenet.Pick) {
	if len(picks) == 0 {
		fmt.Println("no picks")
		return
	}
	for _, p := range picks {
		fmt.Printf("%-16s %s %s\n", p.TraceID, p.Time.Format(time.RFC3339Nano), p.Phase)
	}
}

func storePicks(store datastore.Interface, settings *conf.Settings, picks []phasenet.Pick, metrics *observability.Metrics) error {
	if err := store.Open(); err != nil {
		metrics.Datastore.OperationErrors.WithLabelValues("open").Inc()
		return err
	}
	defer func() { _ = store.Close() }()

	rows := make([]datastore.Pick, 0, len(picks))
	for _, p := range picks {
		rows = append(rows, datastore.Pick{
			UUID:       uuid.New().String(),
			SourceNode: settings.Main.Name,
			TraceID:    p.TraceID,
			Time:       p.Time,
			Phase:      p.Phase,
			Threshold:  settings.Model.ThresholdFor(p.Phase),
		})
	}

	metrics.Datastore.OperationCounter.WithLabelValues("save").Inc()
	if err := store.Save(rows); err != nil {
		metrics.Datastore.OperationErrors.WithLabelValues("save").Inc()
		return err
	}
	return nil
}

func publishPicks(ctx context.Context, settings *conf.Settings, picks []phasenet.Pick, metrics *observability.Metrics) error {
	client := mqtt.NewClient(settings, metrics.MQTT)
	if err := client.Connect(ctx); err != nil {
		return err
	}
	defer client.Disconnect()

	for _, p := range picks {
		payload, err := mqtt.EncodePick(settings.Main.Name, p)
		if err != nil {
			return err
		}
		if err := client.Publish(ctx, settings.MQTT.Topic, payload); err != nil {
			return err
		}
	}
	return nil
}
