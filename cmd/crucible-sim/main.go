package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.opentelemetry.io/otel/sdk/trace/tracetest"

	"github.com/KirkDiggler/crucible-engine/internal/config"
	"github.com/KirkDiggler/crucible-engine/internal/content"
	engine "github.com/KirkDiggler/crucible-engine/internal/domain/action"
	"github.com/KirkDiggler/crucible-engine/internal/observe"
	"github.com/KirkDiggler/crucible-engine/internal/repositories/actionuses"
	"github.com/KirkDiggler/crucible-engine/internal/scripting"
	"github.com/KirkDiggler/crucible-engine/internal/services"
	actionService "github.com/KirkDiggler/crucible-engine/internal/services/action"
)

func main() {
	actorID := flag.String("actor", "fighter", "Actor performing the action")
	actionID := flag.String("action", "strike", "Action to use")
	targets := flag.String("targets", "goblin", "Comma separated target actor IDs")
	cast := flag.String("cast", "", "Comma separated actor IDs to register (default: every loaded actor)")
	confirm := flag.Bool("confirm", true, "Confirm the use after building its outcomes")
	reverse := flag.Bool("reverse", false, "Reverse the use after confirming it")
	list := flag.Bool("list", false, "List the actor's available actions and exit")
	flag.Parse()

	// Load .env file
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found")
	} else {
		log.Println("Loaded .env file")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	ctx := context.Background()

	var spans *tracetest.InMemoryExporter
	if cfg.Engine.Trace {
		spans = tracetest.NewInMemoryExporter()
		shutdown, initErr := observe.InitProvider(ctx, observe.ProviderConfig{
			ServiceName:   "crucible-sim",
			TraceExporter: spans,
		})
		if initErr != nil {
			log.Fatalf("Failed to init telemetry: %v", initErr)
		}
		defer func() {
			if shutdownErr := shutdown(ctx); shutdownErr != nil {
				log.Printf("Failed to shut down telemetry: %v", shutdownErr)
			}
		}()
	}

	compiler, err := scripting.NewCompiler()
	if err != nil {
		log.Fatalf("Failed to create script compiler: %v", err)
	}
	library := content.NewLibrary(compiler)
	if err := library.LoadDirs(cfg.Content.Dirs...); err != nil {
		log.Fatalf("Failed to load content: %v", err)
	}

	providerConfig := &services.ProviderConfig{
		Definitions:   library,
		StrictTargets: cfg.Engine.StrictTargets,
	}

	var redisClient *redis.Client
	if cfg.Redis.Enabled() {
		redisClient = connectRedis(ctx, cfg.Redis.URL)
	}
	if redisClient != nil {
		providerConfig.UseRepository = actionuses.NewRedis(redisClient, nil)
		log.Println("Using Redis for action uses")
		defer func() {
			if closeErr := redisClient.Close(); closeErr != nil {
				log.Printf("Error closing Redis connection: %v", closeErr)
			}
		}()
	} else {
		log.Println("Using in-memory action uses")
	}

	provider, err := services.NewProvider(providerConfig)
	if err != nil {
		log.Fatalf("Failed to create services: %v", err)
	}

	castIDs := splitIDs(*cast)
	if len(castIDs) == 0 {
		castIDs = library.ActorIDs()
	}
	for _, id := range castIDs {
		a, newErr := library.NewActor(id)
		if newErr != nil {
			log.Fatalf("Failed to create actor %s: %v", id, newErr)
		}
		if regErr := provider.ActionService.RegisterActor(ctx, a); regErr != nil {
			log.Fatalf("Failed to register actor %s: %v", id, regErr)
		}
	}

	svc := provider.ActionService
	if *list {
		available, listErr := svc.Available(ctx, *actorID)
		if listErr != nil {
			log.Fatalf("Failed to list actions: %v", listErr)
		}
		for _, a := range available {
			fmt.Printf("%-12s %-16s action=%d focus=%d heroism=%d tags=%s\n",
				a.ID, a.Name, a.Cost.Action, a.Cost.Focus, a.Cost.Heroism, strings.Join(a.Tags, ","))
		}
		return
	}

	result, err := svc.Use(ctx, &actionService.UseInput{
		ActorID:   *actorID,
		ActionID:  *actionID,
		TargetIDs: splitIDs(*targets),
	})
	if err != nil {
		log.Fatalf("Use failed: %v", err)
	}
	for _, d := range result.Dropped {
		fmt.Printf("dropped target %s: %s\n", d.UUID, d.Error)
	}
	printSummary(result.Summary)

	if *confirm {
		summary, confirmErr := svc.Confirm(ctx, result.Summary.UseID)
		if confirmErr != nil {
			log.Printf("Confirm reported: %v", confirmErr)
		}
		if summary != nil {
			fmt.Printf("use %s is now %s\n", summary.UseID, summary.State)
		}

		if *reverse {
			summary, confirmErr = svc.Reverse(ctx, result.Summary.UseID)
			if confirmErr != nil {
				log.Printf("Reverse reported: %v", confirmErr)
			}
			if summary != nil {
				fmt.Printf("use %s is now %s\n", summary.UseID, summary.State)
			}
		}
	}

	printActors(ctx, provider, castIDs)

	if spans != nil {
		for _, span := range spans.GetSpans() {
			fmt.Printf("span %-16s %8s %s\n", span.Name, span.EndTime.Sub(span.StartTime).Round(time.Microsecond), span.Status.Code)
		}
	}
}

func connectRedis(ctx context.Context, url string) *redis.Client {
	log.Printf("Connecting to Redis at: %s", url)

	opts, err := redis.ParseURL(url)
	if err != nil {
		log.Printf("Failed to parse Redis URL: %v", err)
		log.Println("Falling back to in-memory repositories")
		return nil
	}

	client := redis.NewClient(opts)
	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		log.Printf("Failed to connect to Redis: %v", err)
		log.Println("Falling back to in-memory repositories")
		_ = client.Close()
		return nil
	}
	log.Println("Successfully connected to Redis")
	return client
}

func printSummary(s *engine.Summary) {
	fmt.Printf("%s used %s (%s) as %s\n", s.ActorID, s.ActionName, strings.Join(s.Tags, ","), s.UseID)
	for _, o := range s.Outcomes {
		label := o.TargetID
		if o.Self {
			label += " (self)"
		}
		fmt.Printf("  %s\n", label)
		for _, roll := range o.Rolls {
			fmt.Printf("    %s\n", roll)
		}
		for resource, delta := range o.Resources {
			fmt.Printf("    %s %+d\n", resource, delta)
		}
		for status, on := range o.Statuses {
			fmt.Printf("    status %s=%t\n", status, on)
		}
		for _, e := range o.Effects {
			fmt.Printf("    effect %s\n", e.Name)
		}
		if o.StatusText != "" {
			fmt.Printf("    %s\n", o.StatusText)
		}
	}
}

func printActors(ctx context.Context, provider *services.Provider, ids []string) {
	for _, id := range ids {
		a, err := provider.Actors.Get(ctx, id)
		if err != nil {
			continue
		}
		fmt.Println(a.String())
	}
}

func splitIDs(value string) []string {
	var out []string
	for _, part := range strings.Split(value, ",") {
		if part = strings.TrimSpace(part); part != "" {
			out = append(out, part)
		}
	}
	return out
}
