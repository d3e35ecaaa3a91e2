// Package events announces visibility changes to the public site so its
// caches refresh without polling the API.
package events

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"
)

// Publisher notifies subscribers that a record's public visibility changed.
type Publisher interface {
	PublishVisibility(collection string, id int, visible bool)
}

// Nop is used when no broker is configured.
type Nop struct{}

func (Nop) PublishVisibility(string, int, bool) {}

type visibilityMessage struct {
	ID      int    `json:"id"`
	Visible bool   `json:"visible"`
	Kind    string `json:"collection"`
}

// MQTTPublisher publishes visibility flips on athar/<collection>/<id>.
type MQTTPublisher struct {
	client mqtt.Client
}

// NewMQTTPublisher connects to the broker. brokerURL is e.g. "tcp://host:1883".
func NewMQTTPublisher(brokerURL, clientID string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = func(mqtt.Client) {
		log.Info().Str("broker", brokerURL).Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Error().Err(err).Msg("MQTT connection lost")
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &MQTTPublisher{client: client}, nil
}

func (p *MQTTPublisher) PublishVisibility(collection string, id int, visible bool) {
	payload, err := json.Marshal(visibilityMessage{ID: id, Visible: visible, Kind: collection})
	if err != nil {
		return
	}
	topic := fmt.Sprintf("athar/%s/%d", collection, id)
	token := p.client.Publish(topic, 1, false, payload)
	token.Wait()
	if token.Error() != nil {
		log.Error().Err(token.Error()).Str("topic", topic).Msg("failed to publish visibility event")
	}
}

// Close disconnects from the broker.
func (p *MQTTPublisher) Close() {
	p.client.Disconnect(250)
}
