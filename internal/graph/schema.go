package graph

import (
	graphql "github.com/graph-gophers/graphql-go"
)

// Schema is the contract the resolver layer satisfies. likesCount and
// commentsCount are computed at read time, they are not stored fields.
const Schema = `
	schema {
		query: Query
		mutation: Mutation
	}

	type Query {
		login(email: String!, password: String!): AuthData!
		posts(page: Int): PostData!
		post(id: ID!): Post!
		user: User!
		users: [User!]!
		userById(id: ID!): User!
	}

	type Mutation {
		createUser(userInput: UserInputData!): User!
		createPost(postInput: PostInputData!): Post!
		updatePost(id: ID!, postInput: PostInputData!): Post!
		deletePost(id: ID!): Boolean!
		updateStatus(status: String!): User!
		likePost(postId: ID!): Post!
		unlikePost(postId: ID!): Post!
		addComment(commentInput: CommentInputData!): Comment!
		updateComment(commentId: ID!, content: String!): Comment!
		deleteComment(commentId: ID!): Boolean!
		makeAdmin(userId: ID!): User!
		updateUser(userId: ID!, userInput: UserUpdateData!): User!
		deleteUser(userId: ID!): Boolean!
	}

	type Post {
		id: ID!
		title: String!
		content: String!
		imageUrl: String!
		creator: User!
		createdAt: String!
		updatedAt: String!
		likes: [User!]!
		likesCount: Int!
		comments: [Comment!]!
		commentsCount: Int!
	}

	type Comment {
		id: ID!
		content: String!
		creator: User
		post: Post!
		createdAt: String!
	}

	type User {
		id: ID!
		name: String!
		email: String!
		status: String!
		role: String!
		posts: [Post!]!
	}

	type AuthData {
		token: String!
		userId: String!
	}

	type PostData {
		posts: [Post!]!
		totalPosts: Int!
	}

	input UserInputData {
		email: String!
		name: String!
		password: String!
	}

	input PostInputData {
		title: String!
		content: String!
		imageUrl: String!
	}

	input CommentInputData {
		content: String!
		postId: ID!
	}

	input UserUpdateData {
		name: String!
		status: String!
	}
`

// NewSchema parses the schema against the resolver. Panics on mismatch,
// which is a boot-time programming error.
func NewSchema(r *Resolver) *graphql.Schema {
	return graphql.MustParseSchema(Schema, r)
}
