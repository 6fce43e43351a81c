package cmd

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/juju/errors"
	"github.com/kirsrus/osversion/pkg/osversion"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	ginlogrus "github.com/toorop/gin-logrus"
)

const defaultServePort = 4310

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Отдаёт версию ОС этого компьютера по HTTP",
	Long: `Запускает WEB-сервер, который на каждый запрос заново определяет ОС этого компьютера.

  GET /    - строка версии, например "ubuntu 18.04"
  GET /os  - JSON с видом ОС, строкой версии и полями
`,
	SilenceErrors: true,
	SilenceUsage:  true,
	RunE:          serveRunE,
}

// osResponse ответ GET /os
type osResponse struct {
	Kind    string            `json:"kind"`
	Display string            `json:"display"`
	Fields  map[string]string `json:"fields"`
}

func init() {
	serveCmd.Flags().Int("port", defaultServePort, "порт WEB-сервера")
	_ = viper.BindPFlag("port", serveCmd.Flags().Lookup("port"))

	rootCmd.AddCommand(serveCmd)
}

// newRouter создаёт маршруты. detect вызывается на каждый запрос
func newRouter(log *logrus.Logger, detect func() (osversion.Identity, error)) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	webRouter := gin.New()
	if log.Level > logrus.InfoLevel {
		webRouter.Use(ginlogrus.Logger(log))
	}
	webRouter.Use(gin.Recovery())

	webRouter.GET("/", func(c *gin.Context) {
		id, err := detect()
		if err != nil {
			log.Errorf("ошибка определения ОС: %s", err)
			c.String(http.StatusInternalServerError, err.Error())
			return
		}
		c.String(http.StatusOK, id.String())
	})

	webRouter.GET("/os", func(c *gin.Context) {
		id, err := detect()
		if err != nil {
			log.Errorf("ошибка определения ОС: %s", err)
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.JSON(http.StatusOK, osResponse{
			Kind:    id.Kind().String(),
			Display: id.String(),
			Fields:  id.Fields(),
		})
	})

	return webRouter
}

func serveRunE(_ *cobra.Command, _ []string) error {
	onlyLog = true
	log := setupLog()

	webPort := cast.ToInt(viper.GetString("port"))
	if webPort <= 0 || webPort > 65535 {
		return errors.Errorf("указан некорректный порт WEB-сервера '%s'", viper.GetString("port"))
	}

	opts := detectOptions(log)
	webRouter := newRouter(log, func() (osversion.Identity, error) {
		return osversion.DetectWith(opts)
	})

	webServer := &http.Server{
		Addr:    fmt.Sprintf(":%d", webPort),
		Handler: webRouter,
	}

	log.Infof("WEB-сервер запущен на порту http://127.0.0.1:%d", webPort)
	if err := webServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return errors.Trace(err)
	}
	return nil
}
