package db

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/aws/aws-sdk-go-v2/aws"
	awsconfig "github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/service/secretsmanager"
)

type credenciais struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// obterCredenciais busca usuário/senha do banco. Variáveis de ambiente têm
// precedência; na ausência delas o segredo é lido do AWS Secrets Manager.
func obterCredenciais(secretID string) (string, string, error) {
	usuario := os.Getenv("DB_USERNAME")
	senha := os.Getenv("DB_PASSWORD")
	if usuario != "" && senha != "" {
		return usuario, senha, nil
	}

	cfg, err := awsconfig.LoadDefaultConfig(context.TODO())
	if err != nil {
		return "", "", fmt.Errorf("erro ao carregar config AWS: %w", err)
	}
	secrets := secretsmanager.NewFromConfig(cfg)

	resultado, err := secrets.GetSecretValue(context.TODO(), &secretsmanager.GetSecretValueInput{
		SecretId:     aws.String(secretID),
		VersionStage: aws.String("AWSCURRENT"),
	})
	if err != nil {
		return "", "", fmt.Errorf("erro ao buscar segredo %s: %w", secretID, err)
	}

	var cred credenciais
	if err := json.Unmarshal([]byte(*resultado.SecretString), &cred); err != nil {
		return "", "", fmt.Errorf("segredo %s mal formado: %w", secretID, err)
	}
	return cred.Username, cred.Password, nil
}
