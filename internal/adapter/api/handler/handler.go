package handler

import (
	"replyrush/internal/usecase"
)

var (
	productHandler      *ProductHandler
	faqHandler          *FAQHandler
	businessHandler     *BusinessHandler
	orderHandler        *OrderHandler
	conversationHandler *ConversationHandler
	dashboardHandler    *DashboardHandler
	userHandler         *UserHandler
)

func Setup(
	catalogUseCase *usecase.CatalogUseCase,
	businessUseCase *usecase.BusinessUseCase,
	orderUseCase *usecase.OrderUseCase,
	conversationUseCase *usecase.ConversationUseCase,
	dashboardUseCase *usecase.DashboardUseCase,
	userUseCase *usecase.UserUseCase,
	simulatorWhatsapp string,
) {
	productHandler = NewProductHandler(catalogUseCase)
	faqHandler = NewFAQHandler(catalogUseCase)
	businessHandler = NewBusinessHandler(businessUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	conversationHandler = NewConversationHandler(conversationUseCase, simulatorWhatsapp)
	dashboardHandler = NewDashboardHandler(dashboardUseCase)
	userHandler = NewUserHandler(userUseCase)
}

func GetProductHandler() *ProductHandler {
	return productHandler
}

func GetFAQHandler() *FAQHandler {
	return faqHandler
}

func GetBusinessHandler() *BusinessHandler {
	return businessHandler
}

func GetOrderHandler() *OrderHandler {
	return orderHandler
}

func GetConversationHandler() *ConversationHandler {
	return conversationHandler
}

func GetDashboardHandler() *DashboardHandler {
	return dashboardHandler
}

func GetUserHandler() *UserHandler {
	return userHandler
}
