// Package mqtt pushes the current price situation to an MQTT broker
// so home-automation setups can react to cheap or expensive hours.
package mqtt

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/mardo/elpriskollen-go/config"
	"github.com/mardo/elpriskollen-go/convert"
	"github.com/mardo/elpriskollen-go/hours"
	"github.com/mardo/elpriskollen-go/optimize"
	"github.com/mardo/elpriskollen-go/prices"
	"github.com/mardo/elpriskollen-go/stats"
	"github.com/mardo/elpriskollen-go/types"
)

type Publisher struct {
	client paho.Client
	logger *slog.Logger
	prefix string
	area   string
}

// currentMessage mirrors what the dashboard hero section shows.
type currentMessage struct {
	Hour     int     `json:"hour"`
	PriceOre int     `json:"price_ore"`
	PriceSEK float64 `json:"price_sek"`
	Status   string  `json:"status"`
	Updated  string  `json:"updated"`
}

type windowMessage struct {
	StartLabel   string  `json:"start_label"`
	EndLabel     string  `json:"end_label"`
	AveragePrice int     `json:"average_price_ore"`
	AverageSEK   float64 `json:"average_price_sek"`
	Hours        int     `json:"hours"`
}

func New(cnfg config.AppConfigMqtt, area string) *Publisher {
	logger := slog.Default().With("module", "mqtt")
	opts := paho.NewClientOptions()
	opts.AddBroker(fmt.Sprintf("tcp://%s:%d", cnfg.Broker, cnfg.Port))
	opts.SetClientID("elpriskollen")
	opts.SetUsername(cnfg.Username)
	opts.SetPassword(cnfg.Password)
	opts.SetAutoReconnect(true)
	opts.OnConnect = func(client paho.Client) {
		logger.Info("MQTT connected")
	}
	opts.OnConnectionLost = func(client paho.Client, err error) {
		logger.Warn("MQTT connection lost", slog.Any("error", err))
	}

	paho.CRITICAL = newPahoLogger(logger, slog.LevelError)
	paho.ERROR = newPahoLogger(logger, slog.LevelError)
	paho.WARN = newPahoLogger(logger, slog.LevelWarn)

	return &Publisher{
		client: paho.NewClient(opts),
		logger: logger,
		prefix: cnfg.GetTopicPrefix(),
		area:   area,
	}
}

func (p *Publisher) Connect() error {
	p.logger.Debug("connecting MQTT client")
	if token := p.client.Connect(); token.Wait() && token.Error() != nil {
		return token.Error()
	}
	return nil
}

func (p *Publisher) Disconnect() {
	p.client.Disconnect(250)
}

// PublishDaySet publishes the current hour's price and status plus the
// cheapest 4-hour charging window of the rolling view. Messages are
// retained so late subscribers get the latest state.
func (p *Publisher) PublishDaySet(set types.PriceDaySet, now time.Time) {
	currentHour := int(hours.FromTime(now).Hour)

	price, ok := stats.PriceAt(set.Today, currentHour).Get()
	if !ok {
		p.logger.Warn("no price for current hour, skipping publish", slog.Int("hour", currentHour))
		return
	}

	p.publish("current", currentMessage{
		Hour:     currentHour,
		PriceOre: price.Price,
		PriceSEK: convert.OreToSek(price.Price),
		Status:   string(stats.HourStatus(set.Today, currentHour)),
		Updated:  set.LastUpdated.Format(time.RFC3339),
	})

	view := prices.RollingView(set.Today, set.Tomorrow, currentHour)
	if window, ok := optimize.CheapestSpan(view, 4).Get(); ok {
		p.publish("window", windowMessage{
			StartLabel:   view[window.StartIndex].DisplayLabel,
			EndLabel:     view[window.EndIndex].DisplayLabel,
			AveragePrice: window.AveragePrice,
			AverageSEK:   convert.OreToSek(window.AveragePrice),
			Hours:        4,
		})
	}
}

func (p *Publisher) publish(topic string, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		p.logger.Error("marshalling MQTT payload", slog.Any("error", err))
		return
	}

	fullTopic := fmt.Sprintf("%s/%s/%s", p.prefix, p.area, topic)
	token := p.client.Publish(fullTopic, 0, true, data)
	go func() {
		if token.Wait() && token.Error() != nil {
			p.logger.Warn("MQTT publish failed", slog.String("topic", fullTopic), slog.Any("error", token.Error()))
		}
	}()
}
