package ssd1306

// Every setter validates its arguments first and sends nothing when they are
// out of range. Parameters are checked against the panel variant, not the
// raw register width.

// SetContrast sets one of 256 contrast steps.
func (d *Dev) SetContrast(level byte) error {
	return d.sendCommand(cmdSetContrast, level)
}

// SetMultiplexRatio sets the number of COM lines driven, from the variant's
// minimum up to 64.
func (d *Dev) SetMultiplexRatio(ratio int) error {
	if err := checkRange("multiplex ratio", ratio, d.v.MinMultiplexRatio, 64); err != nil {
		return err
	}
	if err := d.sendCommand(cmdSetMultiplex, byte(ratio-1)); err != nil {
		return err
	}
	d.mux = ratio
	return nil
}

// SetDisplayOffset shifts the COM lines vertically by offset rows, wrapping
// around.
func (d *Dev) SetDisplayOffset(offset int) error {
	if err := checkRange("display offset", offset, 0, d.v.H-1); err != nil {
		return err
	}
	return d.sendCommand(cmdSetDisplayOffset, byte(offset))
}

// SetDisplayStartLine sets the GDDRAM row mapped to the first COM line.
func (d *Dev) SetDisplayStartLine(line int) error {
	if err := checkRange("start line", line, 0, d.v.H-1); err != nil {
		return err
	}
	return d.sendCommand(cmdSetStartLine | byte(line))
}

// SetMemoryAddressingMode selects how the GDDRAM pointers advance.
func (d *Dev) SetMemoryAddressingMode(mode AddressingMode) error {
	if mode > PageAddressing {
		return precondition("invalid addressing mode %#x", byte(mode))
	}
	if err := d.sendCommand(cmdMemoryMode, byte(mode)); err != nil {
		return err
	}
	d.mode = mode
	return nil
}

// SetColumnAddresses sets the column window used by horizontal and
// vertical addressing. Both ends are inclusive.
func (d *Dev) SetColumnAddresses(start, end int) error {
	if err := checkSpan("column", start, end, d.v.W); err != nil {
		return err
	}
	return d.sendCommand(cmdColumnAddr, byte(start), byte(end))
}

// SetPageAddresses sets the page window used by horizontal and vertical
// addressing. Both ends are inclusive.
func (d *Dev) SetPageAddresses(start, end int) error {
	if err := checkSpan("page", start, end, d.pages()); err != nil {
		return err
	}
	return d.sendCommand(cmdPageAddr, byte(start), byte(end))
}

// SetPageStartAddress sets the page written next in page addressing mode.
func (d *Dev) SetPageStartAddress(page int) error {
	if err := checkRange("page start address", page, 0, d.pages()-1); err != nil {
		return err
	}
	return d.sendCommand(cmdPageStartAddr | byte(page))
}

// SetColumnStartAddress sets the column written next in page addressing
// mode. It takes two commands, one per nibble.
func (d *Dev) SetColumnStartAddress(col int) error {
	if err := checkRange("column start address", col, 0, d.v.W-1); err != nil {
		return err
	}
	if err := d.sendCommand(cmdSetLowColumn | byte(col)&0x0F); err != nil {
		return err
	}
	return d.sendCommand(cmdSetHighColumn | byte(col)>>4)
}

// SetHorizontalScroll configures a continuous horizontal scroll of pages
// start to end. It does not start scrolling; see ActivateScroll.
func (d *Dev) SetHorizontalScroll(dir ScrollDirection, start, end int, interval ScrollInterval) error {
	if dir > ScrollLeft {
		return precondition("invalid scroll direction %#x", byte(dir))
	}
	if interval > Interval2Frames {
		return precondition("invalid scroll interval %#x", byte(interval))
	}
	if err := checkSpan("scroll page", start, end, d.pages()); err != nil {
		return err
	}
	return d.sendCommand(cmdHorizontalScroll|byte(dir), 0x00, byte(start), byte(interval), byte(end), 0x00, 0xFF)
}

// SetVerticalHorizontalScroll configures a continuous diagonal scroll of
// pages start to end, moving offset rows per step.
func (d *Dev) SetVerticalHorizontalScroll(dir VerticalScrollDirection, start, end int, interval ScrollInterval, offset int) error {
	if dir != ScrollVerticalRight && dir != ScrollVerticalLeft {
		return precondition("invalid scroll direction %#x", byte(dir))
	}
	if interval > Interval2Frames {
		return precondition("invalid scroll interval %#x", byte(interval))
	}
	if err := checkSpan("scroll page", start, end, d.pages()); err != nil {
		return err
	}
	if err := checkRange("vertical scroll offset", offset, 0, 63); err != nil {
		return err
	}
	return d.sendCommand(cmdVertHorizontalScroll|byte(dir), 0x00, byte(start), byte(interval), byte(end), byte(offset))
}

// SetVerticalScrollArea sets the number of fixed rows at the top and the
// number of rows that scroll vertically below them. Together they may not
// exceed the multiplex ratio.
func (d *Dev) SetVerticalScrollArea(fixed, scroll int) error {
	if err := checkRange("fixed rows", fixed, 0, 63); err != nil {
		return err
	}
	if err := checkRange("scroll rows", scroll, 0, 64); err != nil {
		return err
	}
	if fixed+scroll > d.mux {
		return precondition("scroll area %d+%d exceeds multiplex ratio %d", fixed, scroll, d.mux)
	}
	return d.sendCommand(cmdVerticalScrollArea, byte(fixed), byte(scroll))
}

// ActivateScroll starts or stops the configured scroll. GDDRAM should not
// be written while scrolling is active.
func (d *Dev) ActivateScroll(on bool) error {
	if on {
		return d.sendCommand(cmdActivateScroll)
	}
	return d.sendCommand(cmdDeactivateScroll)
}

// SetClock sets the display clock divide ratio, 1 to the variant's maximum,
// and the oscillator frequency setting, 0 to 15.
func (d *Dev) SetClock(divider, freq int) error {
	if err := checkRange("clock divider", divider, 1, d.v.MaxClockDivider); err != nil {
		return err
	}
	if err := checkRange("oscillator frequency", freq, 0, 15); err != nil {
		return err
	}
	return d.sendCommand(cmdSetDisplayClock, byte(freq)<<4|byte(divider-1))
}

// SetPrecharge sets the phase 1 and phase 2 pre-charge periods in display
// clocks, 1 to 15 each.
func (d *Dev) SetPrecharge(phase1, phase2 int) error {
	if err := checkRange("phase 1 period", phase1, 1, 15); err != nil {
		return err
	}
	if err := checkRange("phase 2 period", phase2, 1, 15); err != nil {
		return err
	}
	return d.sendCommand(cmdSetPrecharge, byte(phase2)<<4|byte(phase1))
}

// SetCOMPinsConfig sets the COM pins hardware configuration and whether the
// left and right COM halves are swapped.
func (d *Dev) SetCOMPinsConfig(cfg COMPinsConfig, remap bool) error {
	if cfg > COMPinsAlternative {
		return precondition("invalid COM pins configuration %#x", byte(cfg))
	}
	return d.sendCommand(cmdSetCOMPins, 0x02|byte(cfg)<<5|b2u(remap)<<4)
}

// SetVCOMHDeselectLevel sets the VCOMH regulator output.
func (d *Dev) SetVCOMHDeselectLevel(level VCOMHLevel) error {
	if !level.valid() {
		return precondition("invalid VCOMH deselect level %#x", byte(level))
	}
	return d.sendCommand(cmdSetVCOMHDeselect, byte(level)<<4)
}

// SetSegmentRemap selects which SEG output GDDRAM column 0 drives.
func (d *Dev) SetSegmentRemap(m SegmentRemap) error {
	if m > SegmentRemap127 {
		return precondition("invalid segment remap %#x", byte(m))
	}
	return d.sendCommand(cmdSegmentRemap | byte(m))
}

// SetCOMOutputScanDirection selects the COM scan order, flipping the image
// vertically when remapped.
func (d *Dev) SetCOMOutputScanDirection(dir COMScanDirection) error {
	if dir != COMScanNormal && dir != COMScanRemapped {
		return precondition("invalid COM scan direction %#x", byte(dir))
	}
	return d.sendCommand(cmdCOMScanDirection | byte(dir))
}

// EnableDisplay turns the panel on or off (sleep mode). GDDRAM is kept.
func (d *Dev) EnableDisplay(on bool) error {
	return d.sendCommand(cmdDisplay | b2u(on))
}

// EnableChargePump turns the internal charge pump regulator on or off. It
// must be on when the panel is powered from a low supply, and must be set
// before the display is turned on.
func (d *Dev) EnableChargePump(on bool) error {
	return d.sendCommand(cmdChargePump, 0x10|b2u(on)<<2)
}

// SetInverseDisplay inverts the meaning of GDDRAM bits: 0 lit, 1 dark.
func (d *Dev) SetInverseDisplay(inverse bool) error {
	return d.sendCommand(cmdNormalInverse | b2u(inverse))
}

// UseRAMContents makes the panel follow GDDRAM. When false, every pixel is
// lit regardless of GDDRAM.
func (d *Dev) UseRAMContents(use bool) error {
	return d.sendCommand(cmdEntireDisplay | b2u(!use))
}

// NOP sends the no-operation command.
func (d *Dev) NOP() error {
	return d.sendCommand(cmdNOP)
}
