package yabreaker

import "github.com/vovakirdan/ya-breaker/internal/core"

// EventKind identifies something that happened during a tick.
type EventKind int

const (
	EventPaddleHit EventKind = iota + 1
	EventBallLost
	EventBrickBreak
	EventEnemyBounce
	EventObstacleBounce
	EventRoundReset // Board regenerated after a non-gating fail
	EventInterstitialShown
	EventInterstitialHidden
)

// String returns a human-readable name for the event kind.
func (k EventKind) String() string {
	switch k {
	case EventPaddleHit:
		return "paddle-hit"
	case EventBallLost:
		return "ball-lost"
	case EventBrickBreak:
		return "brick-break"
	case EventEnemyBounce:
		return "enemy-bounce"
	case EventObstacleBounce:
		return "obstacle-bounce"
	case EventRoundReset:
		return "round-reset"
	case EventInterstitialShown:
		return "interstitial-shown"
	case EventInterstitialHidden:
		return "interstitial-hidden"
	default:
		return "unknown"
	}
}

// Sound returns the sound effect triggered by this event, if any.
// Enemy and obstacle bounces reuse the brick-break sound.
func (k EventKind) Sound() (core.SoundID, bool) {
	switch k {
	case EventPaddleHit:
		return core.SoundPaddleHit, true
	case EventBallLost:
		return core.SoundBallLost, true
	case EventBrickBreak, EventEnemyBounce, EventObstacleBounce:
		return core.SoundBrickBreak, true
	default:
		return "", false
	}
}

// Event is emitted by the simulation instead of performing side effects inline.
type Event struct {
	Kind  EventKind
	Tick  int
	Fails int // Fail counter after the event
}

// PlaySounds hands every sound-bearing event to the player, in order.
// The player is expected to return immediately.
func PlaySounds(p core.SoundPlayer, events []Event) {
	if p == nil {
		return
	}
	for _, e := range events {
		if id, ok := e.Kind.Sound(); ok {
			p.Play(id)
		}
	}
}
