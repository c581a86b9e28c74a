package main

// @title           WallyAI Shopping Assistant API
// @version         1.0
// @description     Backend for the WallyAI smart shopping assistant: conversational product help, SmartLists, cart and snap checkout

// @contact.name   API Support

// @host      localhost:8080
// @BasePath  /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT authentication header using the Bearer scheme. Example: "Bearer {token}"
