package queue

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
)

// EconomyQueueName is the durable queue economy events are published to.
const EconomyQueueName = "hubzz.economy"

// StartLedgerConsumer connects to RabbitMQ, declares the economy queue
// (durable), and starts consuming messages. Each message is appended to
// dir/ledger.log as a single human-friendly line. The function runs a
// reconnect loop and only returns once ctx is cancelled; processing
// errors are logged and the offending message is rejected so the server
// keeps operating.
func StartLedgerConsumer(ctx context.Context, url, dir string) error {
	backoff := time.Second
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		conn, err := amqp.Dial(url)
		if err != nil {
			log.Printf("ledger-consumer: failed to dial broker: %v; retrying in %s", err, backoff)
			if !sleep(ctx, backoff) {
				return ctx.Err()
			}
			if backoff < 30*time.Second {
				backoff *= 2
			}
			continue
		}
		backoff = time.Second

		err = consumeLoop(ctx, conn, dir)
		_ = conn.Close()
		if ctx.Err() != nil {
			return ctx.Err()
		}
		log.Printf("ledger-consumer: consume loop ended: %v; reconnecting", err)
		if !sleep(ctx, 2*time.Second) {
			return ctx.Err()
		}
	}
}

func sleep(ctx context.Context, d time.Duration) bool {
	t := time.NewTimer(d)
	defer t.Stop()
	select {
	case <-ctx.Done():
		return false
	case <-t.C:
		return true
	}
}

func consumeLoop(ctx context.Context, conn *amqp.Connection, dir string) error {
	ch, err := conn.Channel()
	if err != nil {
		return fmt.Errorf("channel open: %w", err)
	}
	defer func() { _ = ch.Close() }()

	if err := ch.Qos(50, 0, false); err != nil {
		log.Printf("ledger-consumer: set QoS failed: %v", err)
	}
	if _, err := ch.QueueDeclare(EconomyQueueName, true, false, false, false, nil); err != nil {
		return fmt.Errorf("queue declare: %w", err)
	}
	msgs, err := ch.ConsumeWithContext(ctx, EconomyQueueName, "", false, false, false, false, nil)
	if err != nil {
		return fmt.Errorf("queue consume: %w", err)
	}

	for d := range msgs {
		if err := handleMessage(d.Body, dir); err != nil {
			log.Printf("ledger-consumer: handle message failed: %v", err)
			_ = d.Nack(false, false) // reject, do not requeue to avoid tight loops
			continue
		}
		_ = d.Ack(false)
	}
	return errors.New("deliveries channel closed")
}

func handleMessage(body []byte, dir string) error {
	var ev EconomyEvent
	if err := json.Unmarshal(body, &ev); err != nil {
		return fmt.Errorf("unmarshal: %w", err)
	}
	line, err := FormatLedgerLine(ev)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("mkdir %s: %w", dir, err)
	}
	f, err := os.OpenFile(filepath.Join(dir, "ledger.log"), os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	if _, err := f.WriteString(line); err != nil {
		return fmt.Errorf("write log: %w", err)
	}
	return nil
}

// FormatLedgerLine renders ev as one newline-terminated log line.
func FormatLedgerLine(ev EconomyEvent) (string, error) {
	var body string
	switch {
	case ev.Type == TypeTicketPurchased && ev.Ticket != nil:
		t := ev.Ticket
		body = fmt.Sprintf("Ticket purchased | stub_id=%d | event_id=%d | buyer_id=%d | zone_id=%d | zone_owner_id=%d | group_id=%d | price=%d cents | zone_share=%d cents | group_share=%d cents",
			t.StubID, t.EventID, t.BuyerID, t.ZoneID, t.ZoneOwnerID, t.GroupID, t.PriceCents, t.ZoneShareCents, t.GroupShareCents)
	case ev.Type == TypeBadgeAwarded && ev.Badge != nil:
		b := ev.Badge
		body = fmt.Sprintf("Badge awarded | player_id=%d | badge=%q | source=%s", b.PlayerID, b.Badge, b.Source)
	case ev.Type == TypeGroupOnboarded && ev.Affiliation != nil:
		a := ev.Affiliation
		body = fmt.Sprintf("Group onboarded | zone_id=%d | group_id=%d | actor_id=%d | mode=%s", a.ZoneID, a.GroupID, a.ActorID, a.Mode)
	case ev.Type == TypeQuestCompleted && ev.Quest != nil:
		qc := ev.Quest
		body = fmt.Sprintf("Quest completed | player_id=%d | quest_id=%q | xp=%d", qc.PlayerID, qc.QuestID, qc.XPReward)
	default:
		return "", fmt.Errorf("unsupported event %q", ev.Type)
	}
	return fmt.Sprintf("[%s] %s\n", ev.OccurredAt, body), nil
}
