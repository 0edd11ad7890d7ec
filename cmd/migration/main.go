package main

import (
	"log"
	"os"

	"github.com/joho/godotenv"

	"github.com/hugohenrick/pdv-loja/internal/infrastructure/database"
)

func main() {
	// Carregar variáveis de ambiente
	if err := godotenv.Load(); err != nil {
		log.Printf("Aviso: Arquivo .env não encontrado: %v", err)
	}

	direction := "up"
	if len(os.Args) > 1 {
		direction = os.Args[1]
	}

	switch direction {
	case "up":
		if err := database.RunMigrations(); err != nil {
			log.Fatalf("Erro ao executar migrações: %v", err)
		}
		log.Println("Migrações executadas com sucesso!")
	case "down":
		if err := database.RollbackMigration(); err != nil {
			log.Fatalf("Erro ao reverter migração: %v", err)
		}
		log.Println("Migração revertida com sucesso!")
	default:
		log.Fatalf("Direção desconhecida: %q (use up ou down)", direction)
	}
}
