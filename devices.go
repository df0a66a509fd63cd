package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
)

// phoneInfoFields is the number of comma separated values of a device line
const phoneInfoFields = 11

// ParsePhoneInfo splits a device line, values are kept verbatim
func ParsePhoneInfo(line string) (PhoneInfo, error) {
	f := strings.Split(line, ",")
	if len(f) != phoneInfoFields {
		return PhoneInfo{}, fmt.Errorf("expected %d fields, got %d", phoneInfoFields, len(f))
	}
	return PhoneInfo{
		Manufacturer:       f[0],
		ModelName:          f[1],
		ModelCode:          f[2],
		RAM:                f[3],
		FormFactor:         f[4],
		SoC:                f[5],
		ScreenSizes:        f[6],
		ScreenDensities:    f[7],
		ABIs:               f[8],
		AndroidSDKVersions: f[9],
		OpenGLESVersions:   f[10],
	}, nil
}

// ReadPhoneInfos reads the device list, skipping the header line and blank lines
func ReadPhoneInfos(file string) ([]PhoneInfo, error) {
	fd, err := os.Open(file)
	if err != nil {
		return nil, err
	}
	defer fd.Close()

	var infos []PhoneInfo
	scanner := bufio.NewScanner(fd)
	number := 0
	for scanner.Scan() {
		number++
		line := strings.TrimSuffix(scanner.Text(), "\r")
		if number == 1 || line == "" {
			continue
		}
		info, err := ParsePhoneInfo(line)
		if err != nil {
			return nil, fmt.Errorf("%s:%d: %w", file, number, err)
		}
		infos = append(infos, info)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	log.Debugf("read %d devices from %s", len(infos), file)
	return infos, nil
}

// WritePrices writes one "model_name,cheapest,most_expensive" line per phone
func WritePrices(file string, phones []*Phone) error {
	fd, err := os.Create(file)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(fd)
	for _, phone := range phones {
		if _, err := fmt.Fprintf(w, "%s,%s,%s\n", phone.Info.ModelName, formatAmount(phone.Cheapest()), formatAmount(phone.MostExpensive())); err != nil {
			fd.Close()
			return err
		}
	}
	if err := w.Flush(); err != nil {
		fd.Close()
		return err
	}
	if err := fd.Close(); err != nil {
		return err
	}
	log.Debugf("wrote %d prices to %s", len(phones), file)
	return nil
}
