// Package mqtt publishes moderation audit events to an MQTT broker so
// external tooling (dashboards, archival consumers) can follow the case
// ledger without reading the database.
package mqtt

import (
	"fmt"
	"sync"
	"time"

	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"github.com/WardenLabs/WardenGo/pkg/logger"
	"github.com/WardenLabs/WardenGo/pkg/models"

	mqtt "github.com/eclipse/paho.mqtt.golang"
)

// CaseEvent is the wire form of a ledger change notification
type CaseEvent struct {
	EventID string        `json:"eventId"`
	Action  string        `json:"action"`
	Case    models.Modlog `json:"case"`
	At      int64         `json:"at"`
}

// Ledger change actions carried in CaseEvent.Action
const (
	ActionCaseCreated = "case_created"
	ActionCaseUpdated = "case_updated"
	ActionCaseExpired = "case_expired"
	ActionCaseVoided  = "case_voided"
)

// Publisher handles the broker connection and audit topic fan-out
type Publisher struct {
	client   mqtt.Client
	clientID string
}

var (
	publisher *Publisher
	once      sync.Once
)

// Init initializes the global publisher
func Init(host, port, username, password, clientID string) *Publisher {
	once.Do(func() {
		publisher = NewPublisher(host, port, username, password, clientID)
	})
	return publisher
}

// Get returns the global publisher
func Get() *Publisher {
	return publisher
}

// NewPublisher creates a publisher and starts connecting to the broker.
// Connection failures are logged, not fatal: the broker is an optional
// consumer and moderation must keep working without it.
func NewPublisher(host, port, username, password, clientID string) *Publisher {
	p := &Publisher{clientID: clientID}

	uniqueID := fmt.Sprintf("%s_%s", clientID, uuid.New().String())

	opts := mqtt.NewClientOptions().
		AddBroker(fmt.Sprintf("tcp://%s:%s", host, port)).
		SetClientID(uniqueID).
		SetUsername(username).
		SetPassword(password).
		SetAutoReconnect(true).
		SetConnectRetry(true).
		SetConnectRetryInterval(5 * time.Second).
		SetOnConnectHandler(func(c mqtt.Client) {
			logger.Success(fmt.Sprintf("Connected to MQTT broker as %s", clientID), "MQTT")
		}).
		SetConnectionLostHandler(func(c mqtt.Client, err error) {
			logger.Error(fmt.Sprintf("MQTT connection lost: %v", err), "MQTT")
		})

	p.client = mqtt.NewClient(opts)

	token := p.client.Connect()
	if token.Wait() && token.Error() != nil {
		logger.Error(fmt.Sprintf("MQTT connection error: %v", token.Error()), "MQTT")
	}

	return p
}

// Destroy closes the broker connection
func (p *Publisher) Destroy() {
	if p.client != nil && p.client.IsConnected() {
		p.client.Disconnect(250)
		logger.System("MQTT connection closed.", "MQTT")
	}
}

// IsConnected returns true if connected to the broker
func (p *Publisher) IsConnected() bool {
	return p.client != nil && p.client.IsConnected()
}

// Publish sends a message to a topic
func (p *Publisher) Publish(topic string, payload interface{}) error {
	data, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal payload: %w", err)
	}

	token := p.client.Publish(topic, 0, false, data)
	token.Wait()
	return token.Error()
}

// PublishCaseEvent emits a ledger change on warden/cases/<action>.
// Failures are logged and swallowed: audit fan-out never blocks or fails
// the moderation action itself.
func (p *Publisher) PublishCaseEvent(action string, c models.Modlog) {
	if p == nil || !p.IsConnected() {
		return
	}

	event := CaseEvent{
		EventID: uuid.New().String(),
		Action:  action,
		Case:    c,
		At:      time.Now().Unix(),
	}

	topic := fmt.Sprintf("warden/cases/%s", action)
	if err := p.Publish(topic, event); err != nil {
		logger.Warn(fmt.Sprintf("Failed to publish %s for case #%d: %v", action, c.CaseID, err), "MQTT")
	}
}

// NotifyCaseCreated emits a case_created event via the global publisher
func NotifyCaseCreated(c models.Modlog) {
	Get().PublishCaseEvent(ActionCaseCreated, c)
}

// NotifyCaseUpdated emits a case_updated event via the global publisher
func NotifyCaseUpdated(c models.Modlog) {
	Get().PublishCaseEvent(ActionCaseUpdated, c)
}

// NotifyCaseExpired emits a case_expired event via the global publisher
func NotifyCaseExpired(c models.Modlog) {
	Get().PublishCaseEvent(ActionCaseExpired, c)
}

// NotifyCaseVoided emits a case_voided event via the global publisher
func NotifyCaseVoided(c models.Modlog) {
	Get().PublishCaseEvent(ActionCaseVoided, c)
}
