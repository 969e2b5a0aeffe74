package panel

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
)

// Every command is an 8-byte header: magic, code, a 32-bit argument and
// a 16-bit header checksum (sum of the preceding bytes).
const headerMagic = 0x7C

func (p *Panel) sendCMD(code uint8, args ...int) error {
	if len(args) > 1 {
		return errors.New("too many args")
	}

	arg := 0
	if len(args) == 1 {
		arg = args[0]
	}

	var bs bytes.Buffer
	bs.WriteByte(headerMagic)
	bs.WriteByte(code)
	_ = binary.Write(&bs, binary.BigEndian, uint32(arg))

	var sum uint16
	for _, b := range bs.Bytes() {
		sum += uint16(b)
	}
	_ = binary.Write(&bs, binary.BigEndian, sum)

	return p.sendBytes(bs.Bytes())
}

func (p *Panel) sendBytes(bs []byte) error {
	start := time.Now()
	sent, err := p.serial.Write(bs)
	if err != nil {
		return err
	}

	ext := ""
	if len(bs) <= 16 {
		ext = fmt.Sprintf("%x", bs)
	}

	p.logger.With(
		zap.Int("sent", sent),
		zap.String("cost", time.Since(start).String()),
		zap.String("data", ext),
	).Debug("transfer")

	return nil
}
