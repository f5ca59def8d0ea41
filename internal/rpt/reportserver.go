//    InfluenceEngine
//    Copyright: Z Mankow 2025-26
//    License: GNU GENERAL PUBLIC LICENSE 3
//        (see LICENSE in the top level directory of the distribution)

package rpt

import (
	"fmt"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/zmankow1/SeniorThesis/internal/lnch"
	"github.com/zmankow1/SeniorThesis/internal/str"
)

//
// OPTIONAL RESULTS SERVER
//

// ServeResults - static file server over the results directory; blocks until killed
func ServeResults(cfg *str.CurrentConfiguration) error {
	const (
		MSG1 = "serving '%s' at http://%s:%d"
	)

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	if cfg.EchoLog > 1 {
		e.Use(middleware.Logger())
	} else if cfg.EchoLog > 0 {
		e.Use(middleware.LoggerWithConfig(middleware.LoggerConfig{
			Format: "status=${status}, uri=${uri}\n",
		}))
	}

	e.Use(middleware.Gzip())
	e.Use(middleware.Recover())

	e.Static("/", cfg.ResultsDir)

	lnch.Msg.MAND(fmt.Sprintf(MSG1, cfg.ResultsDir, cfg.HostIP, cfg.HostPort))
	return e.Start(fmt.Sprintf("%s:%d", cfg.HostIP, cfg.HostPort))
}
