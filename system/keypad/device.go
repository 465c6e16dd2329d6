package keypad

/*
The keypad firmware exposes a vendor defined HID interface next to its keyboard interface:

	input  0x01: [0x01, bitmap lo, bitmap hi]        one bit per key, set while held
	output 0x02: [0x02, key, red, green, blue]       one key's backlight
	output 0x03: [0x03, 8 byte boot keyboard report] relayed to the keyboard interface

Key presses are read from the input report and everything the controller decides
to do is written back as output reports.
*/

import (
	"io"
	"log"
	"sync"

	"github.com/karalabe/usb"
	"github.com/pkg/errors"
)

// Defines the vendorID/productID the keypad firmware enumerates with
const (
	DefaultVendorID  = 0x16d0
	DefaultProductID = 0x08c6
	DefaultInterface = 1
)

const (
	inputReportID    = 0x01
	ledReportID      = 0x02
	keyboardReportID = 0x03
)

// AnyInterface matches the first HID interface with the right vendor and product
const AnyInterface = -1

// port is the subset of usb.Device used here
type port interface {
	Read(b []byte) (int, error)
	Write(b []byte) (int, error)
	Close() error
}

var _ port = usb.Device(nil)

// Config selects the HID interface to open
type Config struct {
	DryRun    bool
	VendorID  uint16
	ProductID uint16
	Interface int
}

// Device is an opened keypad HID interface. It is safe to Close while a Read is blocked.
type Device struct {
	Config
	path string

	port      port
	closeOnce sync.Once
	halt      chan struct{}
}

// Open finds the keypad interface and opens it. In dry run nothing is opened,
// writes are logged and reads block until Close.
func Open(conf Config) (*Device, error) {
	if conf.DryRun {
		log.Printf("[keypad] dry run, not opening %04x:%04x\n", conf.VendorID, conf.ProductID)
		return newDevice(conf, "dry-run", nil), nil
	}

	devices, err := usb.EnumerateHid(conf.VendorID, conf.ProductID)
	if err != nil {
		return nil, errors.Wrap(err, "[keypad] cannot enumerate hid devices")
	}
	var info *usb.DeviceInfo
	for i := range devices {
		if conf.Interface == AnyInterface || devices[i].Interface == conf.Interface {
			info = &devices[i]
			break
		}
	}
	if info == nil {
		return nil, errors.Errorf("[keypad] interface %d of %04x:%04x not found", conf.Interface, conf.VendorID, conf.ProductID)
	}

	p, err := info.Open()
	if err != nil {
		return nil, errors.Wrapf(err, "[keypad] cannot open %s", info.Path)
	}
	log.Printf("[keypad] opened %s (%s %s)\n", info.Path, info.Manufacturer, info.Product)

	return newDevice(conf, info.Path, p), nil
}

func newDevice(conf Config, path string, p port) *Device {
	return &Device{
		Config: conf,
		path:   path,
		port:   p,
		halt:   make(chan struct{}),
	}
}

// Path is the platform path of the opened interface
func (d *Device) Path() string {
	return d.path
}

func (d *Device) Write(report []byte) (int, error) {
	if d.Config.DryRun {
		log.Printf("[dry run] keypad: write report %+v\n", report)
		return len(report), nil
	}
	select {
	case <-d.halt:
		return 0, io.ErrClosedPipe
	default:
	}
	return d.port.Write(report)
}

func (d *Device) Read(buf []byte) (int, error) {
	if d.Config.DryRun {
		<-d.halt
		return 0, io.EOF
	}
	return d.port.Read(buf)
}

// Close releases the interface. Calling it more than once is fine.
func (d *Device) Close() error {
	var err error
	d.closeOnce.Do(func() {
		close(d.halt)
		if d.port != nil {
			err = d.port.Close()
		}
	})
	return err
}
