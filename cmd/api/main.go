package main

import (
	"log"

	"github.com/joho/godotenv"

	"tableorder/internal/config"
	"tableorder/internal/handler"
	"tableorder/internal/infra/db"
	infraRepo "tableorder/internal/infra/repository"
	"tableorder/internal/menu"
	"tableorder/internal/server"
	"tableorder/internal/usecase"
)

func main() {
	// .env は無ければ環境変数だけで動く
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	//DB接続
	gormDB, err := db.Connect()
	if err != nil {
		log.Fatal(err)
	}

	// スキーマ移行は他の何よりも先。失敗したら起動しない。
	if err := db.Migrate(gormDB); err != nil {
		log.Fatal(err)
	}

	// メニューは設定入力。ファイル指定が無ければ組み込み。
	catalog := menu.Default()
	if cfg.MenuFile != "" {
		catalog, err = menu.LoadFile(cfg.MenuFile)
		if err != nil {
			log.Fatal(err)
		}
	}

	//Repository（GORM実装）生成
	orderRepo := infraRepo.NewOrderGormRepository(gormDB)
	txManager := infraRepo.NewTxManagerGorm(gormDB)

	//Usecase生成
	intakeUC := usecase.NewIntakeUsecase(txManager, catalog)
	lifecycleUC := usecase.NewLifecycleUsecase(txManager)
	queryUC := usecase.NewQueryUsecase(orderRepo)

	//Handler生成
	intakeH := handler.NewIntakeHandler(intakeUC, catalog)
	orderH := handler.NewOrderHandler(queryUC, lifecycleUC)
	trackH := handler.NewTrackHandler(queryUC)

	//Server起動
	if err := server.Start(":"+cfg.Port, cfg, intakeH, orderH, trackH); err != nil {
		log.Fatal(err)
	}
}
