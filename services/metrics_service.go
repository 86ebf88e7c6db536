// Package services - services/metrics_service.go
package services

import (
	"os"
	"sync"
	"time"

	"github.com/aws/aws-sdk-go/aws"
	"github.com/aws/aws-sdk-go/aws/session"
	"github.com/aws/aws-sdk-go/service/cloudwatch"

	"activities-portal/logger"
)

// Namespace for all portal metrics
var metricsNamespace = "ActivitiesPortal"

// Reuse a single CloudWatch client for all metrics calls, created lazily so
// test runs without AWS credentials never touch the SDK.
var (
	cwClient *cloudwatch.CloudWatch
	cwOnce   sync.Once
)

func metricsEnabled() bool {
	return os.Getenv("METRICS_ENABLED") == "true"
}

// PublishRosterLoad pushes the duration of one roster fetch-and-render pass.
func PublishRosterLoad(latencyMs float64, outcome string) {
	putMetric("RosterLoadLatencyMs", latencyMs, "Milliseconds", outcome)
}

// PublishSignupOutcome counts signup attempts by outcome.
func PublishSignupOutcome(outcome string) {
	putMetric("SignupAttempts", 1, "Count", outcome)
}

// PublishUnregisterOutcome counts unregister attempts by outcome.
func PublishUnregisterOutcome(outcome string) {
	putMetric("UnregisterAttempts", 1, "Count", outcome)
}

// -----------------------------------------------------------
// internal helper function to package up CloudWatch calls
// -----------------------------------------------------------
func putMetric(metricName string, value float64, unit string, outcome string) {
	if !metricsEnabled() {
		return
	}
	cwOnce.Do(func() {
		cwClient = cloudwatch.New(session.Must(session.NewSession()))
	})

	_, err := cwClient.PutMetricData(&cloudwatch.PutMetricDataInput{
		Namespace: aws.String(metricsNamespace),
		MetricData: []*cloudwatch.MetricDatum{
			{
				MetricName: aws.String(metricName),
				Dimensions: []*cloudwatch.Dimension{
					{
						Name:  aws.String("Outcome"),
						Value: aws.String(outcome),
					},
				},
				Timestamp: aws.Time(time.Now()),
				Value:     aws.Float64(value),
				Unit:      aws.String(unit),
			},
		},
	})

	if err != nil {
		logger.Error.Printf("[putMetric] CloudWatch metric failed (%s): %v", metricName, err)
	}
}
