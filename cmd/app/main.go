package main

import (
	"fmt"
	"log"
	"time"

	"github.com/common-nighthawk/go-figure"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"storyquest-backend/internal/config"
	"storyquest-backend/internal/controller"
	"storyquest-backend/internal/llm"
	"storyquest-backend/internal/quiz"
	"storyquest-backend/internal/service"
	"storyquest-backend/internal/tts"
	logger "storyquest-backend/pkg/logging"
	"storyquest-backend/pkg/middleware"
	"storyquest-backend/utilities"
)

func main() {
	printStartUpBanner()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}
	logger.Init(cfg.Log)

	llmClient := llm.NewClient(cfg.LLM)
	if llmClient.Configured() {
		logger.Info("AI grading enabled (model %s)", cfg.LLM.Model)
	} else {
		logger.Warn("no LLM API key set; all answers will be graded by keyword matching")
	}

	bus := utilities.GlobalEventBus
	bus.Subscribe(utilities.EventEvaluationCompleted, func(data interface{}) {
		if ev, ok := data.(utilities.EvaluationEvent); ok {
			logger.Info("graded %s: correct=%t feedback=%s ai=%t", ev.QuestionID, ev.Correct, ev.Feedback, ev.UsedAI)
		}
	})

	evaluationService := service.NewEvaluationService(llmClient, bus)

	var synth service.Synthesizer
	if ttsClient := tts.NewClient(cfg.TTS); ttsClient.Configured() {
		synth = ttsClient
	} else {
		logger.Warn("no TTS API key set; voice sessions will return text-only feedback")
	}
	voiceService := service.NewVoiceService(evaluationService, synth, bus)

	r := gin.Default()
	r.Use(middleware.RequestDumpMiddleware())

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	controller.RegisterRoutes(r, evaluationService, voiceService)

	addr := fmt.Sprintf("%s:%d", cfg.Host, cfg.Port)
	logger.Info("serving %d quiz questions on %s", len(quiz.IDs()), addr)
	if err := r.Run(addr); err != nil {
		log.Fatalf("server exited: %v", err)
	}
}

func printStartUpBanner() {
	myFigure := figure.NewFigure("STORYQUEST", "", true)
	myFigure.Print()

	fmt.Println("======================================================")
	fmt.Printf("STORYQUEST quiz API (v%s)\n\n", "1.0.0")
}
