// Package docs Lensyz Store API의 Swagger 문서를 등록합니다.
//
// swag init -g cmd/lensyz-store/main.go 로 핸들러 주석에서 다시 생성할 수 있습니다.
package docs

import "github.com/swaggo/swag"

const docTemplate = `{
    "schemes": {{ marshal .Schemes }},
    "swagger": "2.0",
    "info": {
        "description": "{{escape .Description}}",
        "title": "{{.Title}}",
        "contact": {
            "name": "DarkKaiser",
            "url": "https://github.com/DarkKaiser"
        },
        "license": {
            "name": "MIT"
        },
        "version": "{{.Version}}"
    },
    "host": "{{.Host}}",
    "basePath": "{{.BasePath}}",
    "paths": {
        "/health": {
            "get": {
                "tags": ["System"],
                "summary": "서버 상태 확인",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/version": {
            "get": {
                "tags": ["System"],
                "summary": "빌드 정보 조회",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/products": {
            "get": {
                "tags": ["Products"],
                "summary": "상품 목록 조회",
                "description": "필터, 검색어, 정렬을 적용한 상품 목록의 한 페이지를 반환합니다. 범위를 벗어난 페이지 번호는 가장 가까운 유효한 페이지로 보정됩니다.",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "검색어", "name": "q", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "description": "카테고리 (반복 또는 쉼표 구분)", "name": "category", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "description": "브랜드", "name": "brand", "in": "query"},
                    {"type": "array", "items": {"type": "string"}, "description": "색상", "name": "color", "in": "query"},
                    {"type": "number", "description": "최소 가격", "name": "min_price", "in": "query"},
                    {"type": "number", "description": "최대 가격", "name": "max_price", "in": "query"},
                    {"type": "string", "description": "정렬 (default, popular, price-low, price-high, rating, rating-low, newest)", "name": "sort", "in": "query"},
                    {"type": "integer", "description": "페이지 번호 (1부터)", "name": "page", "in": "query"},
                    {"type": "integer", "description": "페이지 크기", "name": "page_size", "in": "query"},
                    {"type": "string", "description": "직전 화면의 canonical_query. 조건이 바뀌었으면 1페이지로 돌아갑니다.", "name": "prev", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "잘못된 필터 값", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "503": {"description": "카탈로그를 사용할 수 없음", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/products/filters": {
            "get": {
                "tags": ["Products"],
                "summary": "필터 선택지 조회",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/products/{id}": {
            "get": {
                "tags": ["Products"],
                "summary": "상품 상세 조회",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "상품 ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "상품 없음", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/search": {
            "get": {
                "tags": ["Search"],
                "summary": "상품 검색",
                "description": "결과가 하나 이상인 검색어는 최근 검색어에 기록됩니다.",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "검색어", "name": "q", "in": "query"},
                    {"type": "string", "description": "정렬", "name": "sort", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "잘못된 정렬 기준", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/search/live": {
            "get": {
                "tags": ["Search"],
                "summary": "실시간 검색 상태 조회",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "추천 상품 계산에 사용할 검색어", "name": "q", "in": "query"}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Search"],
                "summary": "실시간 검색어 입력",
                "description": "입력이 멈춘 뒤 일정 시간(기본 350ms)이 지나면 검색어가 확정됩니다.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"description": "입력 중인 검색어", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.SearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/search/live/flush": {
            "post": {
                "tags": ["Search"],
                "summary": "실시간 검색어 즉시 확정",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/search/history": {
            "get": {
                "tags": ["Search"],
                "summary": "최근 검색어 조회",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Search"],
                "summary": "최근 검색어 추가",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"description": "검색어", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.SearchRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Search"],
                "summary": "최근 검색어 전체 삭제",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/search/history/{timestamp}": {
            "delete": {
                "tags": ["Search"],
                "summary": "최근 검색어 하나 삭제",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "검색 기록 timestamp (Unix 밀리초)", "name": "timestamp", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "잘못된 timestamp", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/cart": {
            "get": {
                "tags": ["Cart"],
                "summary": "장바구니 조회",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "post": {
                "tags": ["Cart"],
                "summary": "장바구니 담기",
                "description": "같은 상품과 같은 옵션이 이미 있으면 수량만 늘어납니다. 수량은 [1, 999] 범위로 보정됩니다.",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"description": "담을 상품", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.AddCartRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "400": {"description": "잘못된 요청", "schema": {"$ref": "#/definitions/response.ErrorResponse"}},
                    "404": {"description": "상품 없음", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Cart"],
                "summary": "장바구니 비우기",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/cart/count": {
            "get": {
                "tags": ["Cart"],
                "summary": "장바구니 수량 조회",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/cart/{index}": {
            "put": {
                "tags": ["Cart"],
                "summary": "장바구니 수량 변경",
                "consumes": ["application/json"],
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "항목 번호 (0부터)", "name": "index", "in": "path", "required": true},
                    {"description": "변경할 수량", "name": "body", "in": "body", "required": true, "schema": {"$ref": "#/definitions/request.UpdateCartRequest"}}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "항목 없음", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            },
            "delete": {
                "tags": ["Cart"],
                "summary": "장바구니 항목 삭제",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "항목 번호 (0부터)", "name": "index", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "항목 없음", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/cart/{index}/increment": {
            "post": {
                "tags": ["Cart"],
                "summary": "장바구니 수량 1 증가",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "항목 번호 (0부터)", "name": "index", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "항목 없음", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/cart/{index}/decrement": {
            "post": {
                "tags": ["Cart"],
                "summary": "장바구니 수량 1 감소",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "integer", "description": "항목 번호 (0부터)", "name": "index", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "항목 없음", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        },
        "/api/v1/wishlist": {
            "get": {
                "tags": ["Wishlist"],
                "summary": "위시리스트 조회",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/wishlist/related": {
            "get": {
                "tags": ["Wishlist"],
                "summary": "위시리스트 추천 상품",
                "produces": ["application/json"],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/wishlist/{id}": {
            "get": {
                "tags": ["Wishlist"],
                "summary": "위시리스트 포함 여부",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "상품 ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            },
            "delete": {
                "tags": ["Wishlist"],
                "summary": "위시리스트에서 제거",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "상품 ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"}
                }
            }
        },
        "/api/v1/wishlist/{id}/toggle": {
            "post": {
                "tags": ["Wishlist"],
                "summary": "위시리스트 토글",
                "produces": ["application/json"],
                "parameters": [
                    {"type": "string", "description": "상품 ID", "name": "id", "in": "path", "required": true}
                ],
                "responses": {
                    "200": {"description": "OK"},
                    "404": {"description": "상품 없음", "schema": {"$ref": "#/definitions/response.ErrorResponse"}}
                }
            }
        }
    },
    "definitions": {
        "response.ErrorResponse": {
            "type": "object",
            "properties": {
                "result_code": {"type": "integer", "example": 400},
                "message": {"type": "string", "example": "요청 본문을 파싱할 수 없습니다"}
            }
        },
        "request.AddCartRequest": {
            "type": "object",
            "required": ["product_id"],
            "properties": {
                "product_id": {"type": "string", "maxLength": 64, "example": "1"},
                "quantity": {"type": "integer", "example": 2},
                "color": {"type": "string", "maxLength": 64, "example": "blue"},
                "size": {"type": "string", "maxLength": 64, "example": "One Size"}
            }
        },
        "request.UpdateCartRequest": {
            "type": "object",
            "properties": {
                "quantity": {"type": "integer", "example": 3}
            }
        },
        "request.SearchRequest": {
            "type": "object",
            "properties": {
                "q": {"type": "string", "maxLength": 200, "example": "blue lenses"}
            }
        }
    }
}`

// SwaggerInfo 런타임에 변경할 수 있는 문서 정보입니다.
var SwaggerInfo = &swag.Spec{
	Version:          "1.0.0",
	Host:             "",
	BasePath:         "/",
	Schemes:          []string{},
	Title:            "Lensyz Store API",
	Description:      "안경, 선글라스, 콘택트렌즈 상점의 상품 탐색, 검색, 장바구니, 위시리스트 REST API입니다.",
	InfoInstanceName: "swagger",
	SwaggerTemplate:  docTemplate,
	LeftDelim:        "{{",
	RightDelim:       "}}",
}

func init() {
	swag.Register(SwaggerInfo.InstanceName(), SwaggerInfo)
}
