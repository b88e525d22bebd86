package main

import (
	"errors"
	"fmt"
	"io"
	"math"

	"github.com/spf13/cobra"

	"github.com/hupe1980/memaccess/accessor"
	"github.com/hupe1980/memaccess/internal/conv"
	"github.com/hupe1980/memaccess/internal/mmap"
)

type dumpConfig struct {
	offset    int64
	length    int64
	width     int
	bigEndian bool
	float     bool
}

func (app *appCtx) dumpCommand() *cobra.Command {
	cfg := dumpConfig{}

	cmd := &cobra.Command{
		Use:   "dump FILE",
		Short: "decode values from a memory-mapped file",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return app.dump(cmd.OutOrStdout(), args[0], cfg)
		},
	}

	flags := cmd.Flags()
	flags.Int64Var(&cfg.offset, "offset", 0, "first byte to decode")
	flags.Int64Var(&cfg.length, "length", 0, "number of bytes to decode (0 = to end of file)")
	flags.IntVar(&cfg.width, "width", 4, "value width in bytes: 1, 2, 4 or 8")
	flags.BoolVar(&cfg.bigEndian, "big-endian", false, "decode big-endian values (default little-endian)")
	flags.BoolVar(&cfg.float, "float", false, "decode 4 and 8 byte values as floating point")
	return cmd
}

func (app *appCtx) dump(w io.Writer, path string, cfg dumpConfig) error {
	switch cfg.width {
	case 1, 2:
		if cfg.float {
			return fmt.Errorf("invalid --width %d: floats are 4 or 8 bytes", cfg.width)
		}
	case 4, 8:
	default:
		return fmt.Errorf("invalid --width %d: want 1, 2, 4 or 8", cfg.width)
	}

	m, err := mmap.Open(path)
	if err != nil {
		return err
	}
	defer m.Close()

	length := cfg.length
	if length == 0 {
		length = int64(m.Size()) - cfg.offset
	}
	offset, err := conv.Int64ToInt(cfg.offset)
	if err != nil {
		return err
	}
	size, err := conv.Int64ToInt(length)
	if err != nil {
		return err
	}
	region, err := m.Region(offset, size)
	if err != nil {
		return fmt.Errorf("region [%d, %d+%d) of %s: %w", cfg.offset, cfg.offset, length, path, err)
	}
	if region.Size() == 0 {
		return nil
	}
	if err := region.Advise(mmap.AccessSequential); err != nil && !errors.Is(err, mmap.ErrUnsupported) {
		app.logger.Debug("advise failed", "error", err)
	}

	acc := app.regionAccessor(region)
	width := int64(cfg.width)
	n := int64(region.Size()) / width * width
	for i := int64(0); i < n; i += width {
		fmt.Fprintf(w, "%08x  %s\n", cfg.offset+i, decode(acc, i, cfg))
	}
	if rest := int64(region.Size()) - n; rest > 0 {
		tail := make([]byte, rest)
		if _, err := m.ReadAt(tail, cfg.offset+n); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		fmt.Fprintf(w, "%08x  tail % x\n", cfg.offset+n, tail)
	}
	return nil
}

// regionAccessor prefers a base-addressed view and falls back to a byte
// array over the mapped bytes without the host intrinsic.
func (app *appCtx) regionAccessor(r *mmap.Region) accessor.MemoryAccessor {
	b, err := accessor.NewBaseAddressed(r.Address(), accessor.WithProvider(app.provider))
	if err == nil {
		return b
	}
	app.logger.Debug("using byte array path", "error", err)
	return accessor.NewByteArray(r.Bytes(), accessor.WithProvider(app.provider))
}

func decode(acc accessor.MemoryAccessor, i int64, cfg dumpConfig) string {
	switch cfg.width {
	case 1:
		return fmt.Sprintf("0x%02x", acc.GetByte(i))
	case 2:
		return fmt.Sprintf("0x%04x", acc.GetCharEndian(i, cfg.bigEndian))
	case 4:
		if cfg.float {
			return fmt.Sprint(acc.GetFloatEndian(i, cfg.bigEndian))
		}
		v := acc.GetIntEndian(i, cfg.bigEndian)
		return fmt.Sprintf("0x%08x  %d", uint32(v), v)
	default:
		if cfg.float {
			f := acc.GetDoubleEndian(i, cfg.bigEndian)
			if math.IsNaN(f) {
				return fmt.Sprintf("NaN(%#x)", math.Float64bits(f))
			}
			return fmt.Sprint(f)
		}
		v := acc.GetLongEndian(i, cfg.bigEndian)
		return fmt.Sprintf("0x%016x  %d", uint64(v), v)
	}
}
