// =============================================================================
// agentselect 主入口
// =============================================================================
// 命令行入口，运行一次完整的 worker 选择与排序流水线
//
// 使用方法:
//
//	agentselect select "What is my policy status" --budget 20
//	agentselect select --config config.yaml --ctx location=Miami "storm damage"
//	agentselect version
// =============================================================================

package main

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/BaSui01/agentselect"
	"github.com/BaSui01/agentselect/config"
	"github.com/BaSui01/agentselect/oracle"
	"github.com/BaSui01/agentselect/types"
)

// =============================================================================
// 📦 版本信息（构建时注入）
// =============================================================================

var (
	Version   = "dev"
	BuildTime = "unknown"
	GitCommit = "unknown"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	switch os.Args[1] {
	case "select":
		runSelect(os.Args[2:])
	case "version":
		printVersion()
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", os.Args[1])
		printUsage()
		os.Exit(1)
	}
}

// =============================================================================
// 🎯 select 命令
// =============================================================================

// ctxFlags 收集可重复的 -ctx key=value 参数
type ctxFlags map[string]types.ContextValue

func (c ctxFlags) String() string { return fmt.Sprintf("%d context entries", len(c)) }

func (c ctxFlags) Set(value string) error {
	key, val, ok := strings.Cut(value, "=")
	if !ok || key == "" {
		return fmt.Errorf("context entry must be key=value, got %q", value)
	}
	c[key] = types.StringValue(val)
	return nil
}

func runSelect(args []string) {
	fs := flag.NewFlagSet("select", flag.ExitOnError)
	configPath := fs.String("config", "", "Path to config file")
	budget := fs.Int("budget", 20, "Resource budget for this request")
	oracleURL := fs.String("oracle-url", "", "Base URL of an OpenAI-compatible oracle backend (optional)")
	contextBag := ctxFlags{}
	fs.Var(contextBag, "ctx", "Context entry as key=value (repeatable)")
	fs.Parse(args)

	if fs.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "Usage: agentselect select [flags] <task description>")
		fs.PrintDefaults()
		os.Exit(1)
	}
	task := strings.Join(fs.Args(), " ")

	// 加载配置
	loader := config.NewLoader()
	if *configPath != "" {
		loader = loader.WithConfigPath(*configPath)
	}
	cfg, err := loader.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v\n", err)
		os.Exit(1)
	}
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "Invalid config: %v\n", err)
		os.Exit(1)
	}

	logger := initLogger(cfg.Log)
	defer logger.Sync()

	// 可选的 Oracle 后端：未配置时分类器使用默认判断
	opts := []agentselect.Option{
		agentselect.WithConfig(cfg),
		agentselect.WithLogger(logger),
	}
	if *oracleURL != "" {
		provider := oracle.NewOpenAIProvider(oracle.OpenAIConfig{
			APIKey:       os.Getenv("ORACLE_API_KEY"),
			BaseURL:      *oracleURL,
			DefaultModel: cfg.Oracle.Model,
			Timeout:      cfg.Oracle.Timeout,
		}, logger)
		opts = append(opts, agentselect.WithOracle(oracle.NewClient(provider, cfg.Oracle, logger)))
	}

	engine, err := agentselect.New(opts...)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to build engine: %v\n", err)
		os.Exit(1)
	}

	result, err := engine.SelectAndSequence(context.Background(), task, contextBag, *budget)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Selection failed: %v\n", err)
		os.Exit(1)
	}

	out, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode result: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(out))
}

// =============================================================================
// 🛠️ 工具函数
// =============================================================================

func initLogger(cfg config.LogConfig) *zap.Logger {
	level := zapcore.InfoLevel
	if err := level.Set(cfg.Level); err != nil {
		level = zapcore.InfoLevel
	}

	zapCfg := zap.NewProductionConfig()
	if cfg.Format == "console" {
		zapCfg = zap.NewDevelopmentConfig()
	}
	zapCfg.Level = zap.NewAtomicLevelAt(level)

	logger, err := zapCfg.Build()
	if err != nil {
		logger = zap.NewNop()
	}
	return logger
}

func printVersion() {
	fmt.Printf("agentselect %s (built %s, commit %s)\n", Version, BuildTime, GitCommit)
}

func printUsage() {
	fmt.Println(`agentselect - dynamic worker selection and sequencing engine

Usage:
  agentselect select [flags] <task description>   Run one selection
  agentselect version                             Show version info
  agentselect help                                Show this help

Select flags:
  -config string      Path to YAML config file
  -budget int         Resource budget (default 20)
  -oracle-url string  OpenAI-compatible oracle backend URL
  -ctx key=value      Context entry (repeatable)`)
}
