package events

import (
	"encoding/json"
	"fmt"

	mqtt "github.com/eclipse/paho.mqtt.golang"
	"github.com/rs/zerolog/log"

	"github.com/gisqo-media/tracker/internal/store"
)

// MQTTPublisher mirrors bus traffic onto an MQTT broker so office
// displays and other non-browser listeners can follow along without
// holding an HTTP connection open.
type MQTTPublisher struct {
	client mqtt.Client
	stop   func()
}

func NewMQTTPublisher(brokerURL, clientID string) (*MQTTPublisher, error) {
	opts := mqtt.NewClientOptions()
	opts.AddBroker(brokerURL)
	opts.SetClientID(clientID)
	opts.OnConnect = func(mqtt.Client) {
		log.Info().Str("broker", brokerURL).Msg("connected to MQTT broker")
	}
	opts.OnConnectionLost = func(_ mqtt.Client, err error) {
		log.Warn().Err(err).Msg("MQTT connection lost")
	}

	client := mqtt.NewClient(opts)
	if token := client.Connect(); token.Wait() && token.Error() != nil {
		return nil, fmt.Errorf("failed to connect to MQTT broker: %w", token.Error())
	}
	return &MQTTPublisher{client: client}, nil
}

// Run relays bus changes onto topic tracker/changes/<collection>.
func (p *MQTTPublisher) Run(b *Bus) {
	ch, unsub := b.Subscribe()
	p.stop = unsub
	go func() {
		for c := range ch {
			p.publish(c)
		}
	}()
}

func (p *MQTTPublisher) publish(c store.Change) {
	payload, err := json.Marshal(c)
	if err != nil {
		return
	}
	topic := fmt.Sprintf("tracker/changes/%s", c.Collection)
	token := p.client.Publish(topic, 1, false, payload)
	token.Wait()
	if token.Error() != nil {
		log.Error().Err(token.Error()).Str("topic", topic).Msg("failed to publish change")
	}
}

func (p *MQTTPublisher) Close() {
	if p.stop != nil {
		p.stop()
	}
	p.client.Disconnect(250)
}
