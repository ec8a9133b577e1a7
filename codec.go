package ssd1306

// The controller's serial protocol has two channels selected by a control
// byte. This driver prefixes every single byte with its own control byte
// (Co=0 per transaction), so each command, parameter or pixel byte is one
// two-byte transport write.

// sendCommand sends the opcode followed by its parameters, each byte in its
// own command-channel write.
func (d *Dev) sendCommand(op byte, params ...byte) error {
	if err := d.write(ctrlCommand, op); err != nil {
		return err
	}
	for _, p := range params {
		if err := d.write(ctrlCommand, p); err != nil {
			return err
		}
	}
	return nil
}

// sendData writes one byte to GDDRAM at the current address pointer.
func (d *Dev) sendData(b byte) error {
	return d.write(ctrlData, b)
}

// sendDataStream writes pix to GDDRAM one byte at a time.
func (d *Dev) sendDataStream(pix []byte) error {
	for _, b := range pix {
		if err := d.sendData(b); err != nil {
			return err
		}
	}
	return nil
}

func (d *Dev) write(ctrl, b byte) error {
	d.frame[0], d.frame[1] = ctrl, b
	return d.t.Write(d.frame[:])
}

// readStatus probes the command channel and returns the status byte.
func (d *Dev) readStatus() (byte, error) {
	d.frame[0] = ctrlCommand
	if err := d.t.Write(d.frame[:1]); err != nil {
		return 0, err
	}
	r := d.frame[1:2]
	if err := d.t.Read(r); err != nil {
		return 0, err
	}
	return r[0], nil
}

// readData probes the data channel and returns the GDDRAM byte at the
// current address pointer. The controller answers the first read after a
// pointer change with a dummy byte, which is discarded.
func (d *Dev) readData() (byte, error) {
	d.frame[0] = ctrlData
	if err := d.t.Write(d.frame[:1]); err != nil {
		return 0, err
	}
	r := d.frame[1:2]
	if err := d.t.Read(r); err != nil {
		return 0, err
	}
	if err := d.t.Read(r); err != nil {
		return 0, err
	}
	return r[0], nil
}
