package ssd1306

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"periph.io/x/conn/v3/i2c/i2ctest"
)

func TestSetterEncoding(t *testing.T) {
	tests := []struct {
		name string
		call func(d *Dev) error
		want []byte
	}{
		{"contrast", func(d *Dev) error { return d.SetContrast(0xCF) }, []byte{0x81, 0xCF}},
		{"multiplex ratio 16", func(d *Dev) error { return d.SetMultiplexRatio(16) }, []byte{0xA8, 0x0F}},
		{"multiplex ratio 64", func(d *Dev) error { return d.SetMultiplexRatio(64) }, []byte{0xA8, 0x3F}},
		{"display offset 31", func(d *Dev) error { return d.SetDisplayOffset(31) }, []byte{0xD3, 0x1F}},
		{"start line 5", func(d *Dev) error { return d.SetDisplayStartLine(5) }, []byte{0x45}},
		{"addressing vertical", func(d *Dev) error { return d.SetMemoryAddressingMode(VerticalAddressing) }, []byte{0x20, 0x01}},
		{"column addresses", func(d *Dev) error { return d.SetColumnAddresses(4, 127) }, []byte{0x21, 0x04, 0x7F}},
		{"page addresses", func(d *Dev) error { return d.SetPageAddresses(1, 3) }, []byte{0x22, 0x01, 0x03}},
		{"page start address", func(d *Dev) error { return d.SetPageStartAddress(2) }, []byte{0xB2}},
		{"column start address", func(d *Dev) error { return d.SetColumnStartAddress(0x5C) }, []byte{0x0C, 0x15}},
		{"horizontal scroll", func(d *Dev) error { return d.SetHorizontalScroll(ScrollLeft, 0, 3, Interval2Frames) }, []byte{0x27, 0x00, 0x00, 0x07, 0x03, 0x00, 0xFF}},
		{"vertical horizontal scroll", func(d *Dev) error {
			return d.SetVerticalHorizontalScroll(ScrollVerticalRight, 1, 2, Interval64Frames, 3)
		}, []byte{0x29, 0x00, 0x01, 0x01, 0x02, 0x03}},
		{"vertical scroll area", func(d *Dev) error { return d.SetVerticalScrollArea(8, 24) }, []byte{0xA3, 0x08, 0x18}},
		{"activate scroll", func(d *Dev) error { return d.ActivateScroll(true) }, []byte{0x2F}},
		{"deactivate scroll", func(d *Dev) error { return d.ActivateScroll(false) }, []byte{0x2E}},
		{"clock", func(d *Dev) error { return d.SetClock(1, 8) }, []byte{0xD5, 0x80}},
		{"clock max divider", func(d *Dev) error { return d.SetClock(16, 15) }, []byte{0xD5, 0xFF}},
		{"precharge", func(d *Dev) error { return d.SetPrecharge(1, 15) }, []byte{0xD9, 0xF1}},
		{"com pins alternative remap", func(d *Dev) error { return d.SetCOMPinsConfig(COMPinsAlternative, true) }, []byte{0xDA, 0x32}},
		{"com pins sequential", func(d *Dev) error { return d.SetCOMPinsConfig(COMPinsSequential, false) }, []byte{0xDA, 0x02}},
		{"com pins alternative", func(d *Dev) error { return d.SetCOMPinsConfig(COMPinsAlternative, false) }, []byte{0xDA, 0x22}},
		{"com pins sequential remap", func(d *Dev) error { return d.SetCOMPinsConfig(COMPinsSequential, true) }, []byte{0xDA, 0x12}},
		{"vcomh 0.77", func(d *Dev) error { return d.SetVCOMHDeselectLevel(VCOMH077) }, []byte{0xDB, 0x20}},
		{"vcomh 0.83", func(d *Dev) error { return d.SetVCOMHDeselectLevel(VCOMH083) }, []byte{0xDB, 0x30}},
		{"segment remap 127", func(d *Dev) error { return d.SetSegmentRemap(SegmentRemap127) }, []byte{0xA1}},
		{"com scan remapped", func(d *Dev) error { return d.SetCOMOutputScanDirection(COMScanRemapped) }, []byte{0xC8}},
		{"display on", func(d *Dev) error { return d.EnableDisplay(true) }, []byte{0xAF}},
		{"display off", func(d *Dev) error { return d.EnableDisplay(false) }, []byte{0xAE}},
		{"charge pump on", func(d *Dev) error { return d.EnableChargePump(true) }, []byte{0x8D, 0x14}},
		{"charge pump off", func(d *Dev) error { return d.EnableChargePump(false) }, []byte{0x8D, 0x10}},
		{"inverse", func(d *Dev) error { return d.SetInverseDisplay(true) }, []byte{0xA7}},
		{"normal", func(d *Dev) error { return d.SetInverseDisplay(false) }, []byte{0xA6}},
		{"use ram", func(d *Dev) error { return d.UseRAMContents(true) }, []byte{0xA4}},
		{"entire display on", func(d *Dev) error { return d.UseRAMContents(false) }, []byte{0xA5}},
		{"nop", func(d *Dev) error { return d.NOP() }, []byte{0xE3}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, bus := newRecorded(t, Variant128x32)
			require.NoError(t, tt.call(d))
			if diff := cmp.Diff(cmds(tt.want...), bus.Ops); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestSetterPreconditions(t *testing.T) {
	tests := []struct {
		name    string
		variant Variant
		call    func(d *Dev) error
	}{
		{"multiplex ratio 15", Variant128x32, func(d *Dev) error { return d.SetMultiplexRatio(15) }},
		{"multiplex ratio 65", Variant128x32, func(d *Dev) error { return d.SetMultiplexRatio(65) }},
		{"multiplex ratio 0 on 128x64", Variant128x64, func(d *Dev) error { return d.SetMultiplexRatio(0) }},
		{"display offset 32", Variant128x32, func(d *Dev) error { return d.SetDisplayOffset(32) }},
		{"display offset -1", Variant128x32, func(d *Dev) error { return d.SetDisplayOffset(-1) }},
		{"start line 32", Variant128x32, func(d *Dev) error { return d.SetDisplayStartLine(32) }},
		{"addressing mode 3", Variant128x32, func(d *Dev) error { return d.SetMemoryAddressingMode(3) }},
		{"column end 128", Variant128x32, func(d *Dev) error { return d.SetColumnAddresses(0, 128) }},
		{"column start > end", Variant128x32, func(d *Dev) error { return d.SetColumnAddresses(10, 9) }},
		{"page end 4", Variant128x32, func(d *Dev) error { return d.SetPageAddresses(0, 4) }},
		{"page start > end", Variant128x64, func(d *Dev) error { return d.SetPageAddresses(5, 4) }},
		{"page start address 4", Variant128x32, func(d *Dev) error { return d.SetPageStartAddress(4) }},
		{"column start address 128", Variant128x32, func(d *Dev) error { return d.SetColumnStartAddress(128) }},
		{"horizontal scroll end page", Variant128x32, func(d *Dev) error { return d.SetHorizontalScroll(ScrollRight, 0, 4, Interval5Frames) }},
		{"horizontal scroll inverted", Variant128x32, func(d *Dev) error { return d.SetHorizontalScroll(ScrollRight, 2, 1, Interval5Frames) }},
		{"horizontal scroll direction", Variant128x32, func(d *Dev) error { return d.SetHorizontalScroll(2, 0, 1, Interval5Frames) }},
		{"horizontal scroll interval", Variant128x32, func(d *Dev) error { return d.SetHorizontalScroll(ScrollRight, 0, 1, 8) }},
		{"vertical scroll pages", Variant128x32, func(d *Dev) error {
			return d.SetVerticalHorizontalScroll(ScrollVerticalLeft, 3, 2, Interval5Frames, 1)
		}},
		{"vertical scroll offset", Variant128x64, func(d *Dev) error {
			return d.SetVerticalHorizontalScroll(ScrollVerticalLeft, 0, 7, Interval5Frames, 64)
		}},
		{"vertical scroll direction", Variant128x64, func(d *Dev) error {
			return d.SetVerticalHorizontalScroll(0, 0, 7, Interval5Frames, 1)
		}},
		{"scroll area over multiplex", Variant128x32, func(d *Dev) error {
			if err := d.SetMultiplexRatio(32); err != nil {
				return err
			}
			d.t.(interface{ Reset() }).Reset()
			return d.SetVerticalScrollArea(8, 32)
		}},
		{"clock divider 0", Variant128x32, func(d *Dev) error { return d.SetClock(0, 8) }},
		{"clock divider 17", Variant128x32, func(d *Dev) error { return d.SetClock(17, 8) }},
		{"oscillator 16", Variant128x32, func(d *Dev) error { return d.SetClock(1, 16) }},
		{"phase 1 zero", Variant128x32, func(d *Dev) error { return d.SetPrecharge(0, 2) }},
		{"phase 2 sixteen", Variant128x32, func(d *Dev) error { return d.SetPrecharge(2, 16) }},
		{"com pins config", Variant128x32, func(d *Dev) error { return d.SetCOMPinsConfig(2, false) }},
		{"vcomh level", Variant128x32, func(d *Dev) error { return d.SetVCOMHDeselectLevel(0x20) }},
		{"segment remap", Variant128x32, func(d *Dev) error { return d.SetSegmentRemap(2) }},
		{"com scan direction", Variant128x32, func(d *Dev) error { return d.SetCOMOutputScanDirection(0x01) }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := &resettable{}
			d, err := New(rec, &Opts{Variant: tt.variant})
			require.NoError(t, err)
			require.ErrorIs(t, tt.call(d), ErrPrecondition)
			assert.Empty(t, rec.writes, "writes sent for an invalid call")
		})
	}
}

func TestMultiplexRatioVariant(t *testing.T) {
	d, bus := newRecorded(t, Variant128x64)
	require.NoError(t, d.SetMultiplexRatio(1), "128x64 should accept a multiplex ratio of 1")
	if diff := cmp.Diff(cmds(0xA8, 0x00), bus.Ops); diff != "" {
		t.Errorf("mismatch (-want +got):\n%s", diff)
	}
}

func TestDisplayOffsetWrites(t *testing.T) {
	d, bus := newRecorded(t, Variant128x32)
	require.NoError(t, d.SetDisplayOffset(31))
	assert.Len(t, bus.Ops, 2)
}

func TestSendCommandFraming(t *testing.T) {
	for n := 0; n <= 6; n++ {
		d, bus := newRecorded(t, Variant128x32)
		params := make([]byte, n)
		for i := range params {
			params[i] = byte(0x10 + i)
		}
		require.NoError(t, d.sendCommand(0x26, params...))
		require.Len(t, bus.Ops, n+1, "%d params", n)
		// Strip the control bytes and get opcode+params back.
		var got []byte
		for _, op := range bus.Ops {
			require.Len(t, op.W, 2, "%d params", n)
			require.Equal(t, byte(ctrlCommand), op.W[0], "%d params: write %#v is not a command pair", n, op.W)
			got = append(got, op.W[1])
		}
		if diff := cmp.Diff(append([]byte{0x26}, params...), got); diff != "" {
			t.Errorf("%d params: mismatch (-want +got):\n%s", n, diff)
		}
	}
}

func TestAddressingModeTracking(t *testing.T) {
	d, _ := newRecorded(t, Variant128x32)
	for _, m := range []AddressingMode{VerticalAddressing, PageAddressing, HorizontalAddressing} {
		require.NoError(t, d.SetMemoryAddressingMode(m))
		assert.Equal(t, m, d.AddressingMode())
	}
	require.ErrorIs(t, d.SetMemoryAddressingMode(7), ErrPrecondition)
	assert.Equal(t, HorizontalAddressing, d.AddressingMode(), "a rejected mode must not change the tracked mode")
}

func TestTransportErrorKeepsMode(t *testing.T) {
	bus := &i2ctest.Playback{DontPanic: true}
	d, err := NewI2C(bus, nil)
	require.NoError(t, err)
	require.Error(t, d.SetMemoryAddressingMode(VerticalAddressing))
	assert.Equal(t, PageAddressing, d.AddressingMode())
}

// resettable is a Transport that keeps the writes it was given.
type resettable struct {
	writes [][]byte
}

func (r *resettable) Open() error  { return nil }
func (r *resettable) Close() error { return nil }
func (r *resettable) Reset()       { r.writes = nil }

func (r *resettable) Write(p []byte) error {
	r.writes = append(r.writes, append([]byte(nil), p...))
	return nil
}

func (r *resettable) Read(p []byte) error {
	return errors.New("resettable: no reads")
}
