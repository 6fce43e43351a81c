package cmd

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/juju/errors"
	"github.com/kirsrus/osversion/pkg/logging"
	"github.com/kirsrus/osversion/pkg/osversion"
	"github.com/kirsrus/osversion/pkg/tools"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const (
	binName   = "osversion"
	product   = "osversion"
	copyright = "Стерликов Кирилл"

	// Секунды, через которые программа завершает работу после вывода информации об ошибке.
	sleepBeforeErrorExit = 3
)

var (
	cfgFile   string
	globalLog *logrus.Logger

	gitVersion string
	gitCommit  string
	gitDate    string

	// Ключ, который указывает, что при ошибке будет выводиться только лог (true),
	// или информация в свободной форме (false)
	onlyLog bool
)

var rootCmd = &cobra.Command{
	Use:   binName,
	Short: "Определяет операционную систему и её версию",
	Long: `Программа определяет операционную систему, на которой запущена, и выводит её версию одной строкой.

Linux: дистрибутив и версия из /etc/os-release
macOS: ProductVersion из /System/Library/CoreServices/SystemVersion.plist
Windows: редакция по данным RtlGetVersion (10, 8.1, server 2012 r2, xp и т.д.)
OpenBSD: версия ядра

Примеры использования:

Вывести версию ОС:
   osversion

Вывести версию и все определённые поля:
   osversion --verbose

Проверить разбор другого файла os-release:
   osversion --os-release ./os-release
`,
	SilenceErrors: true, // Отключает вывод описния ошибок
	SilenceUsage:  true, // Отключает вывод текста "описание использования" при ошибке
	RunE:          rootRunE,
}

// Execute добавляет все дочерние команды к корневой команде и устанавливает соответствующие флаги.
// Это вызывается main.main(). Это должно произойти только один раз с rootCmd.
func Execute(gitVersionIn string, gitCommitIn string, gitDateIn string) {
	gitVersion = gitVersionIn
	gitCommit = gitCommitIn
	gitDate = strings.ReplaceAll(gitDateIn, "T", " ")

	err := rootCmd.Execute()
	if err != nil {
		if onlyLog {
			if globalLog.Level > logrus.InfoLevel {
				globalLog.WithFields(map[string]interface{}{
					"stack": errors.ErrorStack(errors.Annotate(err, "end point")),
				}).Error(err.Error())
			} else {
				globalLog.Error(err.Error())
			}
		} else {
			// Убираем дублирующуюся первую строку, если она соответствует имени ошибки
			stack := strings.Split(fmt.Sprintf("%+v", errors.ErrorStack(errors.Trace(err))), "\n")
			if len(stack) > 0 && stack[0] == errors.Cause(err).Error() {
				stack = stack[1:]
			}
			for i := range stack {
				stack[i] = strings.Trim(stack[i], ": ")
			}

			fmt.Printf("ERROR: %s\nSTACK:\n  ", errors.Cause(err))
			fmt.Printf("%s\n\n", strings.Join(stack, "\n  "))
			time.Sleep(sleepBeforeErrorExit * time.Second)
		}
		os.Exit(1)
	}
}

func init() {
	initLogging()
	cobra.OnInitialize(initGlobalConfig)

	rootCmd.PersistentFlags().Bool("version", false, "версия программы")
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "файл конфигурации (по умолчанию $HOME/.osversion.yaml)")
	rootCmd.PersistentFlags().String("log", "", "файл логирования")
	rootCmd.PersistentFlags().String("level", "", "уровень логирования (debug|info|warn|error)")
	rootCmd.PersistentFlags().String("os-release", "", "файл os-release (по умолчанию "+osversion.DefaultOSReleaseFile+")")
	rootCmd.PersistentFlags().String("system-version", "", "файл SystemVersion.plist (по умолчанию "+osversion.DefaultSystemVersionFile+")")
	rootCmd.Flags().Bool("verbose", false, "вывести все определённые поля")

	for _, name := range []string{"log", "level", "os-release", "system-version"} {
		_ = viper.BindPFlag(name, rootCmd.PersistentFlags().Lookup(name))
	}
}

// initGlobalConfig reads in config file and ENV variables if set.
func initGlobalConfig() {
	if cfgFile != "" {
		// Use config file from the flag.
		viper.SetConfigFile(cfgFile)
	} else {
		// Find home directory.
		home, err := os.UserHomeDir()
		cobra.CheckErr(err)

		// Search config in home directory with name ".osversion" (without extension).
		viper.AddConfigPath(home)
		viper.SetConfigType("yaml")
		viper.SetConfigName(".osversion")
	}

	viper.SetEnvPrefix(binName)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv() // read in environment variables that match

	// If a config file is found, read it in.
	if err := viper.ReadInConfig(); err == nil {
		_, _ = fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func initLogging() {
	// Консоль Windows 7, 2008 R2 и ниже не поддерживает цвет
	globalLog = logging.New(runtime.GOOS == "windows", tools.ColoredConsole())
}

// setupLog направляет лог в stdout (и в файл из --log) и выставляет уровень из --level
func setupLog() *logrus.Logger {
	log := globalLog
	log.Level = logrus.InfoLevel
	log.Out = os.Stdout

	logFileRaw := viper.GetString("log")
	if logFileRaw != "" {
		logFile, err := os.OpenFile(logFileRaw, os.O_APPEND|os.O_WRONLY|os.O_CREATE, 0600)
		if err != nil {
			log.Warnf("ошибка открытия файла для сохранения лога '%s'", logFileRaw)
		} else {
			logging.DisableColors(log)
			log.Out = io.MultiWriter(os.Stdout, logFile)
		}
	}

	if logLevelRaw := viper.GetString("level"); logLevelRaw != "" {
		if l, err := logrus.ParseLevel(logLevelRaw); err != nil {
			log.Warnf("неправильно указан уровень логирования '%s'", logLevelRaw)
		} else {
			log.Level = l
		}
	}

	if log.Level > logrus.InfoLevel {
		logging.ShortTimestamp(log)
	}

	return log
}

// detectOptions собирает настройки детекторов из флагов и конфигурации
func detectOptions(log *logrus.Logger) osversion.Options {
	return osversion.Options{
		OSReleaseFile:     viper.GetString("os-release"),
		SystemVersionFile: viper.GetString("system-version"),
		Log:               log,
	}
}

func rootRunE(cmd *cobra.Command, _ []string) error {
	gitVersion = strings.TrimSpace(gitVersion)
	onlyLog = true

	if cmd.Flag("version").Changed {
		fmt.Printf("%s\n", gitVersion)
		return nil
	}

	log := setupLog()

	id, err := osversion.DetectWith(detectOptions(log))
	if err != nil {
		return errors.Trace(err)
	}

	verbose, _ := cmd.Flags().GetBool("verbose")
	if verbose {
		fields := id.Fields()
		fields["kind"] = id.Kind().String()

		currLogLevel := log.Level
		log.Level = logrus.InfoLevel
		for _, v := range tools.FieldsWidget(fmt.Sprintf("%s %s (%s) @ %s", product, gitVersion, shortCommit(), copyright), fields, "*") {
			log.Info(v)
		}
		log.Level = currLogLevel
	}

	_, err = fmt.Fprintln(cmd.OutOrStdout(), id.String())
	return errors.Trace(err)
}

func shortCommit() string {
	if len(gitCommit) > 7 {
		return gitCommit[0:7]
	}
	return gitCommit
}
