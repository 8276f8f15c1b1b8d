package services

import (
	"TrailGuide/internal/config"
	"fmt"
	"strings"

	"github.com/skip2/go-qrcode"
)

const qrSize = 256

type QRService interface {
	StationQR(id string) ([]byte, error)
	PageQR(id string) ([]byte, error)
}

type qrServiceImpl struct {
	appBaseURL string
}

func NewQRService(configuration *config.Configuration) QRService {
	return &qrServiceImpl{appBaseURL: strings.TrimRight(configuration.App.AppBaseURL, "/")}
}

func (s *qrServiceImpl) StationQR(id string) ([]byte, error) {
	return qrcode.Encode(fmt.Sprintf("%s/stations/detail/%s", s.appBaseURL, id), qrcode.Medium, qrSize)
}

func (s *qrServiceImpl) PageQR(id string) ([]byte, error) {
	return qrcode.Encode(fmt.Sprintf("%s/pages/%s", s.appBaseURL, id), qrcode.Medium, qrSize)
}
