package main

import (
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"github.com/okushnir/ocr2pdf/client"
	"github.com/okushnir/ocr2pdf/config"
	"github.com/okushnir/ocr2pdf/handler"
	"github.com/okushnir/ocr2pdf/render"
	"github.com/okushnir/ocr2pdf/service"
)

func main() {
	_ = godotenv.Load()

	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stdout}).With().Timestamp().Logger()

	cfg := config.LoadConfig()

	// Tesseract v5 reads tessdata from the environment as well as the client
	// setting; keep both in sync.
	os.Setenv("TESSDATA_PREFIX", cfg.TessdataPrefix)
	log.Info().Str("tessdata_prefix", cfg.TessdataPrefix).Msg("configured Tesseract")

	// Clients
	tesseractClient := client.NewTesseractClient(cfg.TessdataPrefix, cfg.OCRLanguages, log)
	qrClient := client.NewQRClient(log)

	// PDF inspection and the render fallback chain
	inspector := service.NewPDFInspector()
	fonts := render.NewFontCache(cfg.FontCacheDir, cfg.FontURL)
	chain := render.DefaultChain(render.Options{
		Fonts:          fonts,
		ChromePath:     cfg.ChromePath,
		ChromeDisabled: cfg.ChromeDisabled,
		Timeout:        cfg.RenderTimeout,
	}, inspector.Validate, log)

	// Service layer
	ocrService := service.NewOCRService(tesseractClient, qrClient, log)
	convertService := service.NewConvertService(ocrService, chain, log)

	// Handler layer
	convertHandler := handler.NewConvertHandler(convertService, tesseractClient, cfg.MaxFileSize, log)

	// Setup Gin router
	router := gin.Default()
	router.MaxMultipartMemory = 32 << 20

	router.GET("/", convertHandler.Index)
	router.GET("/health", convertHandler.Health)
	router.GET("/debug/tesseract", convertHandler.DebugTesseract)

	router.POST("/convert/image", convertHandler.ConvertImage)
	router.POST("/convert/text", convertHandler.ConvertText)

	// Route names from earlier deployments, kept as aliases.
	router.POST("/upload/", convertHandler.ConvertImage)
	router.POST("/text/", convertHandler.ConvertText)

	log.Info().Str("port", cfg.ServerPort).Msg("starting ocr2pdf service")
	if err := router.Run(":" + cfg.ServerPort); err != nil {
		log.Fatal().Err(err).Msg("failed to start server")
	}
}
