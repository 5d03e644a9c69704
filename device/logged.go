package device

import (
	"log"
)

type logged struct {
	Device
}

// Logged traces every call on dev to the standard logger.
func Logged(dev Device) Device {
	return logged{Device: dev}
}

func (d logged) Clear() error {
	log.Println("Device: Clear()")
	return d.Device.Clear()
}

func (d logged) WriteLines(lines ...string) error {
	for _, line := range lines {
		log.Printf("Device: Write(%q)", line)
	}
	return d.Device.WriteLines(lines...)
}

func (d logged) ReadLine(prompt string) (string, error) {
	line, err := d.Device.ReadLine(prompt)
	log.Printf("Device: ReadLine(%q) = %q, %v", prompt, line, err)
	return line, err
}

func (d logged) Close() error {
	log.Println("Device: Close()")
	return d.Device.Close()
}
