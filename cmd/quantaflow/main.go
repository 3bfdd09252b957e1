// Package main is the Quantaflow CLI entry point.
package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"github.com/quantaflow/quantaflow/internal/cli"
	"github.com/quantaflow/quantaflow/internal/config"
	"github.com/quantaflow/quantaflow/internal/models"
	"github.com/quantaflow/quantaflow/internal/results"
	"github.com/quantaflow/quantaflow/internal/server"
	"github.com/quantaflow/quantaflow/internal/simulate"
	"github.com/quantaflow/quantaflow/internal/store"
	"github.com/quantaflow/quantaflow/pkg/utils"
	"go.uber.org/zap"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/quantaflow/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used. Returns the config and the path that was actually loaded.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "login":
		runLogin()
	case "query":
		runQuery()
	case "files":
		runFiles()
	case "queries":
		runQueries()
	case "logs":
		runLogs()
	case "version", "--version", "-v":
		fmt.Printf("quantaflow version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

func runServer() {
	fs := flag.NewFlagSet("server", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging (request handling, stage transitions, etc.)")
	_ = fs.Parse(os.Args[2:])

	cfg, resolvedConfigPath, err := loadConfig(*configPath)
	if err != nil {
		// A missing config is fine for a demo server; run on defaults.
		cfg = &config.Config{}
		config.ApplyDefaults(cfg)
		resolvedConfigPath = "(defaults)"
	}
	debugMode := cfg.Debug || *debug
	logger, err := utils.NewLogger(debugMode)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	logger.Info("config loaded",
		zap.String("config_path", resolvedConfigPath),
		zap.Bool("debug", debugMode),
	)

	st := store.NewMemStore()
	clock := simulate.NewClock()
	simOpts := []simulate.SimulatorOption{}
	if debugMode {
		simOpts = append(simOpts, simulate.WithLogger(logger))
	}
	sim := simulate.NewSimulator(st, clock, simulate.StagesFromDelays(cfg.Simulation.StageDelays()), simOpts...)
	gen := results.NewGenerator()

	srv := server.NewServer(st, sim, gen, clock, cfg, logger)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runLogin() {
	fs := flag.NewFlagSet("login", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	password := fs.String("password", "demo", "password (any value is accepted)")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: quantaflow login [flags] <email>")
		os.Exit(1)
	}
	email := fs.Arg(0)

	var out struct {
		User struct {
			ID    string `json:"id"`
			Email string `json:"email"`
		} `json:"user"`
		Message string `json:"message"`
	}
	body := map[string]string{"email": email, "password": *password}
	if err := postJSON(*serverURL+"/api/auth/login", body, &out); err != nil {
		fmt.Fprintf(os.Stderr, "Login failed: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s\n", out.Message)
	fmt.Printf("user id: %s\n", out.User.ID)
}

func runQuery() {
	fs := flag.NewFlagSet("query", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	userID := fs.String("user", "", "user id (from quantaflow login)")
	modalityList := fs.String("modalities", "text", "comma-separated modalities: text,image,video,audio")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 || *userID == "" {
		fmt.Println("Usage: quantaflow query --user <id> [flags] <query text>")
		os.Exit(1)
	}
	queryText := strings.TrimSpace(strings.Join(fs.Args(), " "))

	modalities := []models.Modality{}
	for _, tag := range strings.Split(*modalityList, ",") {
		if tag = strings.TrimSpace(tag); tag != "" {
			modalities = append(modalities, models.Modality(tag))
		}
	}

	var out struct {
		Query   models.Query         `json:"query"`
		Results []models.QueryResult `json:"results"`
	}
	body := map[string]string{
		"userId":     *userID,
		"queryText":  queryText,
		"modalities": models.EncodeModalities(modalities),
		"status":     string(models.QueryProcessing),
	}
	if err := postJSON(*serverURL+"/api/query", body, &out); err != nil {
		fmt.Fprintf(os.Stderr, "Query failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteResults(os.Stdout, out.Results, parseFormat(*outputFormat)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runFiles() {
	fs := flag.NewFlagSet("files", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: quantaflow files [flags] <user-id>")
		os.Exit(1)
	}

	var out struct {
		Files []models.UploadedFile `json:"files"`
	}
	if err := getJSON(*serverURL+"/api/files/"+fs.Arg(0), &out); err != nil {
		fmt.Fprintf(os.Stderr, "List failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteFiles(os.Stdout, out.Files, parseFormat(*outputFormat)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runQueries() {
	fs := flag.NewFlagSet("queries", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	if fs.NArg() < 1 {
		fmt.Println("Usage: quantaflow queries [flags] <user-id>")
		os.Exit(1)
	}

	var out struct {
		Queries []models.Query `json:"queries"`
	}
	if err := getJSON(*serverURL+"/api/queries/"+fs.Arg(0), &out); err != nil {
		fmt.Fprintf(os.Stderr, "List failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteQueries(os.Stdout, out.Queries, parseFormat(*outputFormat)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func runLogs() {
	fs := flag.NewFlagSet("logs", flag.ExitOnError)
	serverURL := fs.String("server", "http://localhost:8080", "server URL")
	outputFormat := fs.String("output", "text", "output format: text or json")
	_ = fs.Parse(os.Args[2:])

	var out struct {
		Logs []models.QuantumLog `json:"logs"`
	}
	if err := getJSON(*serverURL+"/api/quantum/logs", &out); err != nil {
		fmt.Fprintf(os.Stderr, "Logs failed: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteLogs(os.Stdout, out.Logs, parseFormat(*outputFormat)); err != nil {
		fmt.Fprintf(os.Stderr, "Output failed: %v\n", err)
		os.Exit(1)
	}
}

func parseFormat(s string) cli.OutputFormat {
	if s == "json" {
		return cli.OutputJSON
	}
	return cli.OutputText
}

func postJSON(url string, body interface{}, out interface{}) error {
	b, err := json.Marshal(body)
	if err != nil {
		return err
	}
	resp, err := http.Post(url, "application/json", bytes.NewReader(b))
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(raw))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func getJSON(url string, out interface{}) error {
	resp, err := http.Get(url)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("server returned %d: %s", resp.StatusCode, string(raw))
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode response: %w", err)
	}
	return nil
}

func printUsage() {
	fmt.Println(`quantaflow - quantum-federated multimodal retrieval demo

Usage:
  quantaflow server [flags]            Start the HTTP server
  quantaflow login [flags] <email>     Log in (creates the user on first use)
  quantaflow query [flags] <text>      Submit a retrieval query
  quantaflow files [flags] <user-id>   List a user's uploaded files
  quantaflow queries [flags] <user-id> List a user's queries
  quantaflow logs [flags]              Show the quantum console log
  quantaflow version                   Show version
  quantaflow help                      Show this help

Server Flags:
  --config string    Config file path (default: /usr/local/etc/quantaflow/config.yaml)
  --debug            Enable debug logging (request handling, stage transitions, etc.)

Client Flags:
  --server string      Server URL (default: http://localhost:8080)
  --output string      Output format: text or json (default: text)
  --user string        User id for query submission
  --modalities string  Comma-separated modalities for query (default: text)

Examples:
  quantaflow server --debug
  quantaflow login demo@example.com
  quantaflow query --user <id> --modalities text,audio "federated embeddings"
  quantaflow files <id>
  quantaflow logs --output json`)
}
