package api

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dustin/go-humanize"

	"github.com/talgya/echoforge/internal/catalog"
	"github.com/talgya/echoforge/internal/game"
	"github.com/talgya/echoforge/internal/persistence"
)

// commandRequest is the body of POST /api/v1/command.
type commandRequest struct {
	Command string `json:"command"`
}

// handleCommand is the developer terminal: one text command per request,
// each dispatching to a single session operation.
func (s *Server) handleCommand(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	var req commandRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "bad request body", http.StatusBadRequest)
		return
	}

	fields := strings.Fields(req.Command)
	if len(fields) == 0 {
		http.Error(w, "empty command", http.StatusBadRequest)
		return
	}

	output, err := s.dispatch(fields)
	if err != nil {
		slog.Warn("command failed", "command", req.Command, "error", err)
		writeJSON(w, map[string]any{"ok": false, "error": err.Error()})
		return
	}

	slog.Info("command executed", "command", req.Command)
	writeJSON(w, map[string]any{"ok": true, "output": output})
}

func (s *Server) dispatch(fields []string) (string, error) {
	cmd, args := fields[0], fields[1:]

	switch cmd {
	case "create":
		return s.cmdCreate(args)
	case "build":
		return s.cmdBuild(args)
	case "quest":
		return s.cmdQuest(args)
	case "attack":
		return s.cmdAttack(args)
	case "claim":
		return s.cmdClaim(args)
	case "special":
		return s.cmdSpecial(args)
	case "give":
		return s.cmdGive(args)
	case "setlevel":
		return s.cmdSetLevel(args)
	case "ascend":
		gain, err := s.Session.PerformAscension()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("ascended: +%s power", humanize.Commaf(gain)), nil
	case "transcend":
		gain, err := s.Session.PerformTranscendence()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("transcended: +%.1f power", gain), nil
	case "unlock":
		return s.cmdUnlock(args)
	case "timewarp":
		return s.cmdTimewarp(args)
	case "wipe":
		return s.cmdWipe()
	default:
		return "", fmt.Errorf("unknown command %q", cmd)
	}
}

func (s *Server) cmdCreate(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("usage: create <race> [name]")
	}
	race := catalog.Race(args[0])
	name := strings.Join(args[1:], " ")
	if err := s.Session.CreateCharacter(name, race); err != nil {
		return "", err
	}
	st := s.Session.Snapshot()
	return fmt.Sprintf("created %s the %s", st.Player.Name, st.Player.Race), nil
}

func (s *Server) cmdBuild(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("usage: build <building_id> [count|max]")
	}
	id := args[0]
	count := 1
	if len(args) > 1 {
		if args[1] == "max" {
			n, err := s.Session.MaxAffordable(id)
			if err != nil {
				return "", err
			}
			if n == 0 {
				return "", game.ErrInsufficientResources
			}
			count = n
		} else {
			n, err := strconv.Atoi(args[1])
			if err != nil || n < 1 {
				return "", fmt.Errorf("bad count %q", args[1])
			}
			count = n
		}
	}
	if err := s.Session.BuildBuildings(id, count); err != nil {
		return "", err
	}
	return fmt.Sprintf("built %dx %s", count, id), nil
}

func (s *Server) cmdQuest(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("usage: quest accept|complete <id> | quest all")
	}
	switch args[0] {
	case "accept":
		if len(args) < 2 {
			return "", fmt.Errorf("usage: quest accept <id>")
		}
		if err := s.Session.AcceptQuest(args[1]); err != nil {
			return "", err
		}
		return fmt.Sprintf("quest %s accepted", args[1]), nil
	case "complete":
		if len(args) < 2 {
			return "", fmt.Errorf("usage: quest complete <id>")
		}
		if err := s.Session.CompleteQuest(args[1]); err != nil {
			return "", err
		}
		return fmt.Sprintf("quest %s completed", args[1]), nil
	case "all":
		n, err := s.Session.CompleteAllQuests()
		if err != nil {
			return "", err
		}
		return fmt.Sprintf("completed %d quests", n), nil
	default:
		return "", fmt.Errorf("unknown quest subcommand %q", args[0])
	}
}

func (s *Server) cmdAttack(args []string) (string, error) {
	count := 1
	if len(args) > 0 {
		n, err := strconv.Atoi(args[0])
		if err != nil || n < 1 || n > 1000 {
			return "", fmt.Errorf("bad attack count %q", args[0])
		}
		count = n
	}

	var dealt, gold float64
	kills := 0
	for i := 0; i < count; i++ {
		res, err := s.Session.Attack()
		if err != nil {
			return "", err
		}
		dealt += res.Damage
		gold += res.GoldReward
		if res.Defeated {
			kills++
		}
	}
	return fmt.Sprintf("%d attacks, %s damage, %d kills, %s gold",
		count, humanize.Commaf(dealt), kills, humanize.Commaf(gold)), nil
}

func (s *Server) cmdClaim(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("usage: claim achievement <id> | claim challenge <chain> <tier>")
	}
	switch args[0] {
	case "achievement":
		if err := s.Session.ClaimAchievement(args[1]); err != nil {
			return "", err
		}
		return fmt.Sprintf("achievement %s claimed", args[1]), nil
	case "challenge":
		if len(args) < 3 {
			return "", fmt.Errorf("usage: claim challenge <chain> <tier>")
		}
		if err := s.Session.ClaimChallengeTier(args[1], args[2]); err != nil {
			return "", err
		}
		return fmt.Sprintf("challenge %s/%s claimed", args[1], args[2]), nil
	default:
		return "", fmt.Errorf("unknown claim subcommand %q", args[0])
	}
}

func (s *Server) cmdSpecial(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("usage: special daily|weekly|monthly")
	}
	cadence := catalog.Cadence(args[0])
	if err := s.Session.CompleteSpecialQuest(cadence); err != nil {
		return "", err
	}
	return fmt.Sprintf("%s quest completed", cadence), nil
}

func (s *Server) cmdGive(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("usage: give <resource|exp> <amount>")
	}
	amount, err := strconv.ParseFloat(args[1], 64)
	if err != nil || amount < 0 {
		return "", fmt.Errorf("bad amount %q", args[1])
	}

	if args[0] == "exp" {
		leveled := s.Session.AddExp(amount)
		out := fmt.Sprintf("granted %s exp", humanize.Commaf(amount))
		if leveled {
			out += " (leveled up)"
		}
		return out, nil
	}

	r := catalog.Resource(args[0])
	if err := s.Session.AddResource(r, amount); err != nil {
		return "", err
	}
	return fmt.Sprintf("granted %s %s", humanize.Commaf(amount), r), nil
}

func (s *Server) cmdSetLevel(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("usage: setlevel <n>")
	}
	level, err := strconv.Atoi(args[0])
	if err != nil {
		return "", fmt.Errorf("bad level %q", args[0])
	}
	if err := s.Session.SetLevel(level); err != nil {
		return "", err
	}
	return fmt.Sprintf("level set to %d", level), nil
}

func (s *Server) cmdUnlock(args []string) (string, error) {
	if len(args) < 2 {
		return "", fmt.Errorf("usage: unlock quest|achievement <id>")
	}
	switch args[0] {
	case "achievement":
		if err := s.Session.UnlockAchievement(args[1]); err != nil {
			return "", err
		}
		return fmt.Sprintf("achievement %s unlocked", args[1]), nil
	case "quest":
		if err := s.Session.UnlockQuest(args[1]); err != nil {
			return "", err
		}
		return fmt.Sprintf("quest %s marked completed", args[1]), nil
	default:
		return "", fmt.Errorf("usage: unlock quest|achievement <id>")
	}
}

func (s *Server) cmdTimewarp(args []string) (string, error) {
	if len(args) < 1 {
		return "", fmt.Errorf("usage: timewarp <seconds>")
	}
	seconds, err := strconv.ParseFloat(args[0], 64)
	if err != nil || seconds < 0 {
		return "", fmt.Errorf("bad duration %q", args[0])
	}
	applied := s.Session.CatchUp(secondsToDuration(seconds))
	return fmt.Sprintf("advanced %s of production", humanize.Commaf(applied)+"s"), nil
}

func secondsToDuration(seconds float64) time.Duration {
	return time.Duration(seconds * float64(time.Second))
}

func (s *Server) cmdWipe() (string, error) {
	s.Session.Reset()
	if s.Store != nil {
		if err := s.Store.Clear(persistence.DefaultSlot); err != nil {
			return "", fmt.Errorf("clear save: %w", err)
		}
	}
	return "game state wiped", nil
}
