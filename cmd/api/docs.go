package main

// @title           PDV Loja API
// @version         1.0
// @description     API do ponto de venda: catálogo, carrinho, vendas, clientes, relatórios e backup

// @contact.name   API Support

// @license.name  MIT

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Cabeçalho de autenticação JWT usando o esquema Bearer. Exemplo: "Bearer {token}"
