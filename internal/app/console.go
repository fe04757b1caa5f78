package app

import (
	"errors"
	"flag"
	"fmt"
	"strconv"

	"voxel-lab/internal/commands"
	"voxel-lab/internal/engineconfig"
	"voxel-lab/internal/voxel"
)

var errUsage = errors.New("bad arguments")

// RegisterCommands adds the lab's console commands to reg.
func (s *State) RegisterCommands(reg *commands.Registry) {
	reg.Register("clear", "remove every block", nil, func([]string) error {
		s.ClearAll()
		return nil
	})

	reg.Register("mode", "toggle edit mode", nil, func([]string) error {
		s.ToggleMode()
		return nil
	})

	reg.Register("face", "yaw|pitch +1|-1 (edit mode)", nil, func(args []string) error {
		if !s.Edit() {
			return errors.New("facing only works in edit mode")
		}
		if len(args) != 2 {
			return fmt.Errorf("%w: want axis and step", errUsage)
		}
		step, err := strconv.Atoi(args[1])
		if err != nil {
			return fmt.Errorf("%w: %v", errUsage, err)
		}
		switch args[0] {
		case "yaw":
			s.Face(step, 0)
		case "pitch":
			s.Face(0, step)
		default:
			return fmt.Errorf("%w: axis must be yaw or pitch", errUsage)
		}
		f := s.Facing()
		s.log.Info("facing yaw=%d pitch=%d", f.Yaw, f.Pitch)
		return nil
	})

	reg.Register("insert", "preview|animated", nil, func(args []string) error {
		if len(args) != 1 {
			return fmt.Errorf("%w: want preview or animated", errUsage)
		}
		m, ok := voxel.ParseInsertMode(args[0])
		if !ok {
			return fmt.Errorf("%w: unknown insert mode %q", errUsage, args[0])
		}
		s.SetInsertMode(m)
		return nil
	})

	reg.Register("add", "X Y Z", nil, func(args []string) error {
		c, err := parseCoord(args)
		if err != nil {
			return err
		}
		s.Insert(c, s.insertMode)
		return nil
	})

	reg.Register("remove", "X Y Z", nil, func(args []string) error {
		c, err := parseCoord(args)
		if err != nil {
			return err
		}
		if !s.RemoveAt(c) {
			return fmt.Errorf("no block at %s", c)
		}
		return nil
	})

	springFlags := flag.NewFlagSet("spring", flag.ContinueOnError)
	k := springFlags.Float64("k", float64(s.ctl.Config().SpringConstant), "spring constant")
	reg.Register("spring", "-k N", springFlags, func([]string) error {
		if *k <= 0 {
			return fmt.Errorf("%w: -k must be positive", errUsage)
		}
		s.ctl.SetSpringConstant(float32(*k))
		s.log.Info("spring constant %.1f, damping %.2f", *k, s.ctl.Damping())
		return nil
	})

	reg.Register("recenter", "put the camera back at rest", nil, func([]string) error {
		s.ctl.Reset()
		s.log.Info("camera recentered")
		return nil
	})

	reg.Register("save", "[PATH] write the current settings (default "+engineconfig.ConfigPath+")", nil, func(args []string) error {
		if len(args) > 1 {
			return fmt.Errorf("%w: want at most one path", errUsage)
		}
		path := engineconfig.ConfigPath
		if len(args) == 1 {
			path = args[0]
		}
		if err := engineconfig.Save(path, s.Settings()); err != nil {
			return fmt.Errorf("save %s: %w", path, err)
		}
		s.log.Info("settings saved to %s", path)
		return nil
	})

	reg.Register("stats", "log block and animation counters", nil, func([]string) error {
		st := s.Stats()
		s.log.Info("frames=%d blocks=%d entering=%d edit=%t switching=%t rotation=%.3f insert=%s",
			st.Frames, st.Blocks, st.Entering, st.Edit, st.Switching, st.Rotation, st.Insert)
		return nil
	})

	reg.Register("help", "list commands", nil, func([]string) error {
		for _, line := range reg.Help() {
			s.log.Log(line)
		}
		return nil
	})
}

func parseCoord(args []string) (voxel.GridCoord, error) {
	if len(args) != 3 {
		return voxel.GridCoord{}, fmt.Errorf("%w: want X Y Z", errUsage)
	}
	var v [3]int
	for i, a := range args {
		n, err := strconv.Atoi(a)
		if err != nil {
			return voxel.GridCoord{}, fmt.Errorf("%w: %v", errUsage, err)
		}
		v[i] = n
	}
	return voxel.C(v[0], v[1], v[2]), nil
}
