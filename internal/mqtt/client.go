// client.go: Package mqtt provides pick publishing to an MQTT broker.
package mqtt

import (
	"context"
	"fmt"
	"sync"
	"time"

	mqtt "github.com/eclipse/paho.mqtt.golang"

	"github.com/claraeyoon/phasenet-go/internal/conf"
	"github.com/claraeyoon/phasenet-go/internal/errors"
	"github.com/claraeyoon/phasenet-go/internal/observability/metrics"
)

// Client is the interface for the MQTT publishing side of the application.
type Client interface {
	Connect(ctx context.Context) error
	Publish(ctx context.Context, topic, payload string) error
	IsConnected() bool
	Disconnect()
}

// Config holds the connection parameters for the client.
type Config struct {
	Broker            string
	ClientID          string
	Username          string
	Password          string
	ConnectTimeout    time.Duration
	PublishTimeout    time.Duration
	ReconnectCooldown time.Duration
}

// client implements the Client interface.
type client struct {
	config          Config
	internalClient  mqtt.Client
	lastConnAttempt time.Time
	mu              sync.Mutex
	metrics         *metrics.MQTTMetrics
}

// NewClient creates a new MQTT client from the application settings.
func NewClient(settings *conf.Settings, mqttMetrics *metrics.MQTTMetrics) Client {
	return &client{
		config: Config{
			Broker:            settings.MQTT.Broker,
			ClientID:          settings.Main.Name,
			Username:          settings.MQTT.Username,
			Password:          settings.MQTT.Password,
			ConnectTimeout:    30 * time.Second,
			PublishTimeout:    10 * time.Second,
			ReconnectCooldown: 5 * time.Second,
		},
		metrics: mqttMetrics,
	}
}

// Connect attempts to establish a connection to the MQTT broker.
func (c *client) Connect(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if since := time.Since(c.lastConnAttempt); since < c.config.ReconnectCooldown {
		return errors.Newf("connection attempt too recent, last attempt was %v ago", since).
			Component("mqtt").
			Category(errors.CategoryMQTTConnection).
			Build()
	}
	c.lastConnAttempt = time.Now()

	opts := mqtt.NewClientOptions().
		AddBroker(c.config.Broker).
		SetClientID(c.config.ClientID).
		SetUsername(c.config.Username).
		SetPassword(c.config.Password).
		SetConnectTimeout(c.config.ConnectTimeout).
		SetAutoReconnect(true)

	opts.OnConnect = func(mqtt.Client) {
		if c.metrics != nil {
			c.metrics.ConnectionStatus.Set(1)
		}
	}
	opts.OnConnectionLost = func(_ mqtt.Client, _ error) {
		if c.metrics != nil {
			c.metrics.ConnectionStatus.Set(0)
			c.metrics.Errors.WithLabelValues("connection-lost").Inc()
		}
	}

	c.internalClient = mqtt.NewClient(opts)

	token := c.internalClient.Connect()
	if err := waitToken(ctx, token); err != nil {
		if c.metrics != nil {
			c.metrics.Errors.WithLabelValues("connect").Inc()
		}
		return errors.New(fmt.Errorf("connecting to broker %s: %w", c.config.Broker, err)).
			Component("mqtt").
			Category(errors.CategoryMQTTConnection).
			Context("broker", c.config.Broker).
			Build()
	}
	return nil
}

// Publish sends a payload to a topic, honoring the context deadline.
func (c *client) Publish(ctx context.Context, topic, payload string) error {
	c.mu.Lock()
	internal := c.internalClient
	c.mu.Unlock()

	if internal == nil || !internal.IsConnected() {
		return errors.Newf("not connected to broker").
			Component("mqtt").
			Category(errors.CategoryMQTTPublish).
			Build()
	}

	ctx, cancel := context.WithTimeout(ctx, c.config.PublishTimeout)
	defer cancel()

	token := internal.Publish(topic, 0, false, payload)
	if err := waitToken(ctx, token); err != nil {
		if c.metrics != nil {
			c.metrics.Errors.WithLabelValues("publish").Inc()
		}
		return errors.New(fmt.Errorf("publishing to %s: %w", topic, err)).
			Component("mqtt").
			Category(errors.CategoryMQTTPublish).
			Context("topic", topic).
			Build()
	}
	if c.metrics != nil {
		c.metrics.MessagesDelivered.Inc()
	}
	return nil
}

// IsConnected reports whether the client currently holds a broker connection.
func (c *client) IsConnected() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.internalClient != nil && c.internalClient.IsConnected()
}

// Disconnect closes the connection to the broker.
func (c *client) Disconnect() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.internalClient != nil {
		c.internalClient.Disconnect(250)
		if c.metrics != nil {
			c.metrics.ConnectionStatus.Set(0)
		}
	}
}

// waitToken waits for a paho token to complete or the context to expire.
func waitToken(ctx context.Context, token mqtt.Token) error {
	select {
	case <-token.Done():
		return token.Error()
	case <-ctx.Done():
		return ctx.Err()
	}
}
