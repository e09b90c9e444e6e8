package initializers

import (
	"context"
	"time"

	"talent-scout-backend/config"
	"talent-scout-backend/fiberlog"
	retentionworker "talent-scout-backend/lib/candidate/retention-worker"
	pdfexport "talent-scout-backend/lib/export/pdf"
	xlsexport "talent-scout-backend/lib/export/xls"
	gpthandler "talent-scout-backend/lib/gpt"
	sessionhandler "talent-scout-backend/lib/session"
	sessionexpireworker "talent-scout-backend/lib/session/expire-worker"
)

var LoggerConfig *fiberlog.Config

func InitAllServices(ctx context.Context) {
	LoggerConfig = InitLogger()
	config.InitConfig()
	InitDBConnection()
	InitS3(ctx)
	InitSmtp()
	pdfexport.SetFontDir(config.Conf.Pdf.FontDir)
	xlsexport.NewHandler()
	gpthandler.NewHandler()
	sessionhandler.NewHandler()
	go initWorkers(ctx)
}

// запускаем с промежутком в 10 сек чтоб размыть нагрузку
func initWorkers(ctx context.Context) {
	// Задача удаления неактивных сессий
	sessionexpireworker.StartWorker(ctx)

	if makeTimeGap(ctx) {
		// Задача удаления анкет и писем старше срока хранения
		retentionworker.StartWorker(ctx)
	}
}

func makeTimeGap(ctx context.Context) (canRun bool) {
	select {
	case <-ctx.Done():
		return false
	case <-time.After(time.Second * 10):
		return true
	}
}
