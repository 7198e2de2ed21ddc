package harness

// C++-specific generator tokens.
const (
	TokenParamDeser = "__PARAMETER_DESERIALIZATION_PLACEHOLDER__"
	TokenArgList    = "__FUNCTION_ARGUMENT_LIST_PLACEHOLDER__"
	TokenReturnSer  = "__RETURN_SERIALIZATION_PLACEHOLDER__"
	TokenCallPrefix = "__CALL_PREFIX_PLACEHOLDER__"
)

// Cpp is the signature-extraction harness for C++ submissions. The sandbox
// image stages nlohmann/json; the generated deserialisation block pulls each
// parameter from the envelope's input object by name.
const Cpp = `#include <iostream>
#include <vector>
#include <string>
#include <queue>
#include <optional>
#include <sstream>
#include <stdexcept>
#include <unordered_set>
#include <nlohmann/json.hpp>

using json = nlohmann::json;
using namespace std;

struct ListNode {
    int val;
    ListNode *next;
    ListNode() : val(0), next(nullptr) {}
    ListNode(int x) : val(x), next(nullptr) {}
    ListNode(int x, ListNode *next) : val(x), next(next) {}
};

struct TreeNode {
    int val;
    TreeNode *left;
    TreeNode *right;
    TreeNode() : val(0), left(nullptr), right(nullptr) {}
    TreeNode(int x) : val(x), left(nullptr), right(nullptr) {}
    TreeNode(int x, TreeNode *left, TreeNode *right) : val(x), left(left), right(right) {}
};

static ListNode* buildLinkedList(const vector<int>& values, int pos) {
    if (values.empty()) return nullptr;
    vector<ListNode*> nodes;
    nodes.reserve(values.size());
    for (int v : values) nodes.push_back(new ListNode(v));
    for (size_t i = 0; i + 1 < nodes.size(); i++) nodes[i]->next = nodes[i + 1];
    if (pos >= 0 && pos < (int)nodes.size()) nodes.back()->next = nodes[pos];
    return nodes.front();
}

static json serializeLinkedList(ListNode* head) {
    json result = json::array();
    unordered_set<ListNode*> seen;
    while (head != nullptr && seen.insert(head).second) {
        result.push_back(head->val);
        head = head->next;
    }
    return result;
}

static TreeNode* buildTree(const vector<optional<int>>& values) {
    if (values.empty() || !values[0].has_value()) return nullptr;
    TreeNode* root = new TreeNode(values[0].value());
    queue<TreeNode*> q;
    q.push(root);
    size_t i = 1;
    while (!q.empty() && i < values.size()) {
        TreeNode* node = q.front();
        q.pop();
        if (i < values.size() && values[i].has_value()) {
            node->left = new TreeNode(values[i].value());
            q.push(node->left);
        }
        i++;
        if (i < values.size() && values[i].has_value()) {
            node->right = new TreeNode(values[i].value());
            q.push(node->right);
        }
        i++;
    }
    return root;
}

static json serializeTree(TreeNode* root) {
    json result = json::array();
    if (root == nullptr) return result;
    queue<TreeNode*> q;
    q.push(root);
    while (!q.empty()) {
        TreeNode* node = q.front();
        q.pop();
        if (node == nullptr) {
            result.push_back(nullptr);
            continue;
        }
        result.push_back(node->val);
        q.push(node->left);
        q.push(node->right);
    }
    while (!result.empty() && result.back().is_null()) result.erase(result.size() - 1);
    return result;
}

static vector<optional<int>> parseNullableInts(const json& arr) {
    vector<optional<int>> out;
    for (const auto& el : arr) {
        if (el.is_null()) out.push_back(nullopt);
        else out.push_back(el.get<int>());
    }
    return out;
}

__SOURCE_CODE_PLACEHOLDER__

int main() {
    string raw((istreambuf_iterator<char>(cin)), istreambuf_iterator<char>());
    try {
        json envelope = json::parse(raw);
        string functionName = envelope.value("function_name", "");
        if (!functionName.empty() && functionName != "__FUNCTION_NAME_PLACEHOLDER__") {
            json err;
            err["error"] = "function '" + functionName + "' not found";
            cout << err.dump() << endl;
            return 1;
        }
        json j = envelope.contains("input") ? envelope["input"] : json::object();

        __PARAMETER_DESERIALIZATION_PLACEHOLDER__

        json out;
        json output;
        __CALL_PREFIX_PLACEHOLDER____FUNCTION_NAME_PLACEHOLDER__(__FUNCTION_ARGUMENT_LIST_PLACEHOLDER__);
        __RETURN_SERIALIZATION_PLACEHOLDER__
        out["result"] = output;
        cout << out.dump() << endl;
    } catch (const exception& e) {
        json err;
        err["error"] = e.what();
        cout << err.dump() << endl;
        return 1;
    }
    return 0;
}
`
