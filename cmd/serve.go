package cmd

import (
	"fmt"
	"net"
	"net/http"

	"github.com/gin-gonic/gin"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"filescope/internal/apihandlers"
)

var (
	serveAddr string
	servePort string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Serve the scan history over HTTP",
	RunE: func(cmd *cobra.Command, args []string) error {
		appInstance, err := GetAppFromContext(cmd.Context())
		if err != nil {
			return err
		}

		addr := serveAddr
		if addr == "" {
			addr = appInstance.Config.Server.Addr
		}
		port := servePort
		if port == "" {
			port = appInstance.Config.Server.Port
		}

		handler := apihandlers.NewAPIHandler(appInstance.ScanService)

		router := gin.Default()
		router.GET("/health", func(c *gin.Context) {
			if err := appInstance.ScanStore.Ping(c.Request.Context()); err != nil {
				c.JSON(http.StatusServiceUnavailable, gin.H{"status": "degraded"})
				return
			}
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})
		v1 := router.Group("/api/v1")
		{
			v1.GET("/scans", handler.ListScansHandler)
			v1.GET("/scans/:id", handler.GetScanHandler)
			v1.GET("/scans/:id/summary", handler.GetScanSummaryHandler)
		}

		listen := net.JoinHostPort(addr, port)
		log.Infof("serving scan history on http://%s", listen)
		if err := router.Run(listen); err != nil {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	},
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", "", "Address to bind (defaults to config)")
	serveCmd.Flags().StringVar(&servePort, "port", "", "Port to listen on (defaults to config)")
	rootCmd.AddCommand(serveCmd)
}
